package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config is read from the environment. A .env file, when present, is loaded
// by godotenv/autoload before Load runs.
type Config struct {
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AWS      AWS
	Tables   Tables
	Payments Payments

	// Number of catalog services offered by the order form.
	CatalogPageSize int `env:"CATALOG_PAGE_SIZE" envDefault:"1000"`
}

type AWS struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type Tables struct {
	WorkOrders string `env:"WORK_ORDERS_TABLE" envDefault:"work_orders"`
	Services   string `env:"SERVICES_TABLE" envDefault:"services"`
	Payments   string `env:"PAYMENTS_TABLE" envDefault:"work_order_payments"`
}

type Payments struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock                   bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error while parsing config: %w", err)
	}
	return cfg, nil
}

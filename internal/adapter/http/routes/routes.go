package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mecanica_workorders/docs"
	"mecanica_workorders/internal/adapter/http/handlers"
	"mecanica_workorders/internal/adapter/http/middleware"
	"mecanica_workorders/internal/adapter/persistence/repository"
	"mecanica_workorders/internal/infrastructure/config"
	"mecanica_workorders/internal/infrastructure/database"
	"mecanica_workorders/internal/infrastructure/logger"
	"mecanica_workorders/internal/infrastructure/metrics"
	"mecanica_workorders/internal/infrastructure/payments"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Forms      *handlers.WorkOrderFormHandler
	WorkOrders *handlers.WorkOrderHandler
	Services   *handlers.ServiceCatalogHandler
	Payments   *handlers.WorkOrderPaymentHandler
}

// Run will start the server
func Run() {
	if err := logger.Bootstrap(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		zap.L().Fatal("failed to initialize logger", zap.Error(err))
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		zap.L().Fatal("failed to wire dependencies", zap.Error(err))
	}

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: NewRouter(h),
	}

	go func() {
		zap.L().Info("starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("got interruption signal, shutting down HTTP server gracefully")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

// NewRouter registers middlewares, docs, metrics and the /v1 API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	addPingRoutes(&router.RouterGroup)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, h.Services)
	addWorkOrderRoutes(v1, h.WorkOrders, h.Payments)
	addFormRoutes(v1, h.Forms)

	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, err
	}

	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb, cfg.Tables.WorkOrders)
	catalogRepo := repository.NewServiceCatalogDynamoRepository(ddb, cfg.Tables.Services)
	paymentRepo := repository.NewWorkOrderPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	formMetrics := metrics.NewFormMetrics(prometheus.DefaultRegisterer)

	var paymentGateway interfaces.IPaymentGateway
	if cfg.Payments.Mock {
		zap.L().Info("payment gateway mock mode enabled")
	} else {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken)
		if err != nil {
			zap.L().Warn("Mercado Pago gateway not configured", zap.Error(err))
		} else {
			paymentGateway = mpGateway
		}
	}

	formUseCase := usecase.NewWorkOrderFormUseCase(catalogRepo, workOrderRepo, formMetrics,
		usecase.WithCatalogPageSize(cfg.CatalogPageSize))
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo)
	catalogUseCase := usecase.NewServiceCatalogUseCase(catalogRepo)
	paymentUseCase := usecase.NewWorkOrderPaymentUseCase(paymentRepo, workOrderRepo, paymentGateway, cfg.Payments.Mock)

	return Handlers{
		Forms:      handlers.NewWorkOrderFormHandler(formUseCase),
		WorkOrders: handlers.NewWorkOrderHandler(workOrderUseCase),
		Services:   handlers.NewServiceCatalogHandler(catalogUseCase),
		Payments:   handlers.NewWorkOrderPaymentHandler(paymentUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
}

package request

import "github.com/shopspring/decimal"

type ServiceLineRequest struct {
	Name  string           `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

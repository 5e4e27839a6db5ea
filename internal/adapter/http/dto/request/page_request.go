package request

import (
	"mecanica_workorders/internal/domain/entities"
)

// PageQuery binds ?page=&page_size=&order= query parameters.
type PageQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=0"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=1000"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (q PageQuery) ToFilter(defaultOrder entities.SortOrder) entities.PageFilter {
	order := entities.SortOrder(q.Order)
	if order == "" {
		order = defaultOrder
	}
	return entities.PageFilter{Page: q.Page, PageSize: q.PageSize, Order: order}.Normalize()
}

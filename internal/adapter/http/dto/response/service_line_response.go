package response

import (
	"mecanica_workorders/internal/domain/entities"
)

type ServiceLineResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ServiceLinePageResponse struct {
	Data       []ServiceLineResponse `json:"data"`
	TotalCount int                   `json:"total_count"`
}

func FromServiceLine(s entities.ServiceLine) ServiceLineResponse {
	return ServiceLineResponse{
		ID:    s.ID,
		Name:  s.Name,
		Price: s.Price.StringFixed(2),
	}
}

func FromServiceLines(lines []entities.ServiceLine) []ServiceLineResponse {
	out := make([]ServiceLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromServiceLine(l))
	}
	return out
}

func FromServiceLinePage(p entities.Page[entities.ServiceLine]) ServiceLinePageResponse {
	return ServiceLinePageResponse{Data: FromServiceLines(p.Data), TotalCount: p.TotalCount}
}

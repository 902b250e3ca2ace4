package dto

import "rimbest/shared"

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

func NewPagination(params QueryParams, total int) Pagination {
	return Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		TotalItems: total,
		TotalPages: shared.CalculateTotalPage(total, params.Limit),
	}
}

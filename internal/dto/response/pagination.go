package response

import "hall-booking/pkg/utils"

// PaginationMeta matches the {total, page, limit, pages} listing contract
type PaginationMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	return PaginationMeta{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: utils.CalculateTotalPages(total, limit),
	}
}

package utils

import (
	"chaipoint-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// BuildPaginationRequest reads page/page_size query params, falling back to
// sane defaults and capping the page size.
func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

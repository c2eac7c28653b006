package httpserver

import (
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PaginationMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type PaginatedResponse[T any] struct {
	Data       []T             `json:"data"`
	Total      int             `json:"total"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: _defaultPage, Limit: _defaultLimit}
}

// ExtractPaginationParams reads ?page=&limit=. The boolean reports whether
// the caller asked for paging at all; list endpoints return everything
// otherwise.
func ExtractPaginationParams(r *http.Request) (PaginationParams, bool) {
	query := r.URL.Query()
	if !query.Has("page") && !query.Has("limit") {
		return DefaultPaginationParams(), false
	}

	params := DefaultPaginationParams()
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 && limit <= _maxLimit {
		params.Limit = limit
	}

	return params, true
}

func ReplyWithList[T any](w http.ResponseWriter, data []T, total int) {
	ReplyJSONResponse(w, http.StatusOK, PaginatedResponse[T]{Data: data, Total: total})
}

func ReplyWithPaginatedData[T any](w http.ResponseWriter, data []T, total int, params PaginationParams) {
	ReplyJSONResponse(w, http.StatusOK, PaginatedResponse[T]{
		Data:  data,
		Total: total,
		Pagination: &PaginationMeta{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

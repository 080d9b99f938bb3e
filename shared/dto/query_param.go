package dto

import (
	"net/http"
	"net/url"
	"petcare/shared/constant"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries listing controls. Page and Limit of zero mean unpaginated.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Malformed or
// non-positive numbers are ignored and limit is capped at constant.MaxValueLimit. With
// paginate set, missing page and limit get their defaults.
func (q *QueryParams) FromRequest(r *http.Request, paginate bool) {
	values := r.URL.Query()

	if page, ok := positiveParam(values, constant.RequestParamPage); ok {
		q.Page = page
	}

	if limit, ok := positiveParam(values, constant.RequestParamLimit); ok {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.TrimSpace(values.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir, ok := sortDirection(values.Get(constant.RequestParamSortDir)); ok {
		q.SortDir = dir
	}

	if !paginate {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// RestrictSort clears the ordering unless SortBy is one of allowed. A lone column sorts DESC.
func (q *QueryParams) RestrictSort(allowed ...string) {
	switch {
	case q.SortBy == "":
	case !slices.Contains(allowed, q.SortBy):
		q.SortBy, q.SortDir = "", ""
	case q.SortDir == "":
		q.SortDir = SortDirDesc
	}
}

func positiveParam(values url.Values, name string) (int, bool) {
	n, err := strconv.Atoi(values.Get(name))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

func sortDirection(raw string) (string, bool) {
	switch dir := strings.ToUpper(strings.TrimSpace(raw)); dir {
	case SortDirAsc, SortDirDesc:
		return dir, true
	default:
		return "", false
	}
}

package dto

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"hotelbook/shared/constant"
)

// sortColumnPattern limits sort_by to plain column names since it is interpolated into ORDER BY.
var sortColumnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit and sort parameters. Malformed values are dropped rather than
// rejected, limit is capped at constant.MaxValueLimit, and with defaultRequest the listing falls back
// to the first page of constant.DefaultValueLimit rows.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	q.Page = positive(queryParams.Get(constant.RequestParamPage), q.Page)
	q.Limit = min(positive(queryParams.Get(constant.RequestParamLimit), q.Limit), constant.MaxValueLimit)

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortColumnPattern.MatchString(sortBy) {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if !defaultRequest {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.SortBy != "" && q.SortDir == "" {
		q.SortDir = constant.DefaultValueSortDir
	}
}

func positive(raw string, fallback int) int {
	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		return value
	}

	return fallback
}

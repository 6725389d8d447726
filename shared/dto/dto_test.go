package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hotelbook/shared/constant"
	"hotelbook/shared/dto"
	"hotelbook/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "admin-1",
		ModifiedBy: "admin-2",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEqual(t, metadata.CreatedAt, metadata.ModifiedAt)
	assert.Equal(t, "admin-1", metadata.CreatedBy)
	assert.Equal(t, "admin-2", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		withDefault bool
		expected    dto.QueryParams
	}{
		{
			name:     "explicit values",
			query:    "page=2&limit=20&sort_by=check_in&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in", SortDir: dto.SortDirAsc},
		},
		{
			name:        "defaults",
			withDefault: true,
			expected:    dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "invalid numbers fall back",
			query:       "page=-1&limit=abc",
			withDefault: true,
			expected:    dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "sort column with sql is ignored",
			query:    "sort_by=id;DROP%20TABLE%20bookings&sort_dir=DESC",
			expected: dto.QueryParams{SortDir: dto.SortDirDesc},
		},
		{
			name:        "sort direction defaults when column given",
			query:       "sort_by=created_at",
			withDefault: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "created_at",
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefault)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_type_id", Value: "deluxe", Operator: dto.FilterOperatorEq, Table: "inventories"},
			dto.Filter{ArgName: "date_from", Field: "date", Value: "2026-03-01", Operator: dto.FilterOperatorGreaterEq, Table: "inventories"},
			dto.Filter{ArgName: "date_to", Field: "date", Value: "2026-03-03", Operator: dto.FilterOperatorLess, Table: "inventories"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t,
		"(inventories.room_type_id = :room_type_id AND inventories.date >= :date_from AND inventories.date < :date_to)",
		where,
	)
	assert.Equal(t, map[string]any{
		"room_type_id": "deluxe",
		"date_from":    "2026-03-01",
		"date_to":      "2026-03-03",
	}, args)
}

func TestFilter_In(t *testing.T) {
	filter := dto.Filter{Field: "status", Value: []string{"PENDING", "PAID"}, Operator: dto.FilterOperatorIn}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "status IN (:status_0, :status_1)", where)
	assert.Equal(t, "PAID", args["status_1"])
}

func TestFilter_InEdgeCases(t *testing.T) {
	empty := dto.Filter{Field: "room_type_id", Value: []string{}, Operator: dto.FilterOperatorIn}

	where, args := empty.GetWhereClause()
	assert.Equal(t, "FALSE", where)
	assert.Empty(t, args)

	scalar := dto.Filter{Field: "provider", Value: "makemytrip", Operator: dto.FilterOperatorIn}

	where, args = scalar.GetWhereClause()
	assert.Equal(t, "provider = :provider", where)
	assert.Equal(t, map[string]any{"provider": "makemytrip"}, args)
}

func TestFilterGroup_SkipsUnknownOperators(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "PAID", Operator: "between"},
			dto.Filter{Field: "source", Value: "DIRECT", Operator: dto.FilterOperatorEq},
		},
	}

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(source = :source)", where)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

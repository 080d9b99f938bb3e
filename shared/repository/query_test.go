package repository

import (
	"petcare/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stamp struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

type ticket struct {
	ID     string `db:"id"`
	Status string `db:"status"`
	Note   string
	Secret string `db:"-"`
	stamp
}

func newTicketRepo() Repository[ticket] {
	return NewRepository[ticket]("ticket", "tickets", "id", nil, nil)
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq}}}
}

func TestColumnsOf_FlattensEmbeddedStructs(t *testing.T) {
	repo := newTicketRepo()

	assert.Equal(t, []string{"id", "status", "created_at", "modified_at"}, repo.columns)
}

func TestInsertQuery(t *testing.T) {
	repo := newTicketRepo()

	assert.Equal(t,
		"INSERT INTO tickets (id, status, created_at, modified_at) VALUES (:id, :status, :created_at, :modified_at)",
		repo.insertQuery(),
	)
}

func TestListQuery(t *testing.T) {
	repo := newTicketRepo()

	tests := []struct {
		name     string
		params   dto.QueryParams
		filter   dto.FilterGroup
		columns  []string
		want     string
		wantArgs map[string]any
	}{
		{
			name:     "everything",
			want:     "SELECT id, status, created_at, modified_at FROM tickets",
			wantArgs: map[string]any{},
		},
		{
			name:     "paged and sorted",
			params:   dto.QueryParams{Page: 3, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirAsc},
			want:     "SELECT id, status, created_at, modified_at FROM tickets ORDER BY created_at ASC LIMIT :limit OFFSET :offset",
			wantArgs: map[string]any{"limit": 10, "offset": 20},
		},
		{
			name:     "unknown sort column is ignored",
			params:   dto.QueryParams{Limit: 5, SortBy: "created_at; DROP TABLE tickets", SortDir: dto.SortDirDesc},
			want:     "SELECT id, status, created_at, modified_at FROM tickets LIMIT :limit",
			wantArgs: map[string]any{"limit": 5},
		},
		{
			name:     "filtered with a column subset",
			filter:   byID("t-1"),
			columns:  []string{"status", "id"},
			want:     "SELECT id, status FROM tickets WHERE (id = :id)",
			wantArgs: map[string]any{"id": "t-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := repo.listQuery(tt.params, tt.filter, tt.columns)

			assert.Equal(t, tt.want, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUpdateQuery(t *testing.T) {
	repo := newTicketRepo()
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	t.Run("assignments are ordered by column", func(t *testing.T) {
		query, args, err := repo.updateQuery(map[string]any{"status": "done", "modified_at": now}, byID("t-1"))
		require.NoError(t, err)

		assert.Equal(t, "UPDATE tickets SET modified_at = :modified_at, status = :status WHERE (id = :id)", query)
		assert.Equal(t, map[string]any{"id": "t-1", "status": "done", "modified_at": now}, args)
	})

	t.Run("no filter", func(t *testing.T) {
		_, _, err := repo.updateQuery(map[string]any{"status": "done"}, dto.FilterGroup{})
		assert.ErrorIs(t, err, errRequiredFilter)
	})

	t.Run("no fields", func(t *testing.T) {
		_, _, err := repo.updateQuery(map[string]any{}, byID("t-1"))
		assert.ErrorIs(t, err, errNoFields)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, _, err := repo.updateQuery(map[string]any{"owner": "x"}, byID("t-1"))
		assert.EqualError(t, err, `unknown column "owner"`)
	})
}

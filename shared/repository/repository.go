package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/shared/constant"
	"petcare/shared/dto"
	"petcare/shared/logger"
	"reflect"
	"slices"
	"strings"

	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
	errNoFields       = errors.New("no fields to update")
)

// IsUniqueViolation reports whether err came from a unique index rejecting a write.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// Repository stores T in a single table. Columns are the `db` tags of T, embedded structs included.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	primary string
	columns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      dbConnection,
		otel:    otl,
		table:   tableName,
		entity:  entityName,
		primary: primaryColumn,
		columns: columnsOf(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.selectList(columns), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	query, args := repo.listQuery(params, filter, columns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s%s", repo.primary, repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &count, args); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// CountBy counts rows per distinct value of column.
func (repo *Repository[T]) CountBy(ctx context.Context, column string, filter dto.FilterGroup) (map[string]int, error) {
	ctx, scope := repo.scope(ctx, "CountBy")
	defer scope.End()

	if !repo.hasColumn(column) {
		return nil, repo.fail(scope, "count data", fmt.Errorf("unknown column %q", column))
	}

	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT %s AS value, COUNT(%s) AS total FROM %s%s GROUP BY %s", column, repo.primary, repo.table, where, column)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []struct {
		Value string `db:"value"`
		Total int    `db:"total"`
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		return nil, repo.fail(scope, "count data by "+column, err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Total
	}

	return counts, nil
}

// Update writes fields to every row matching filter. An empty filter is refused.
func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	query, args, err := repo.updateQuery(fields, filter)
	if err != nil {
		return repo.fail(scope, "update data", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

// listQuery orders only by known columns so sort_by never reaches the SQL unchecked.
func (repo *Repository[T]) listQuery(params dto.QueryParams, filter dto.FilterGroup, columns []string) (string, map[string]any) {
	where, args := repo.where(filter)

	var b strings.Builder

	fmt.Fprintf(&b, "SELECT %s FROM %s%s", repo.selectList(columns), repo.table, where)

	if repo.hasColumn(params.SortBy) && (params.SortDir == dto.SortDirAsc || params.SortDir == dto.SortDirDesc) {
		fmt.Fprintf(&b, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		b.WriteString(" LIMIT :limit OFFSET :offset")
	case params.Limit > 0:
		args["limit"] = params.Limit

		b.WriteString(" LIMIT :limit")
	}

	return b.String(), args
}

func (repo *Repository[T]) updateQuery(fields map[string]any, filter dto.FilterGroup) (string, map[string]any, error) {
	if len(fields) == 0 {
		return "", nil, errNoFields
	}

	where, args := repo.where(filter)
	if where == "" {
		return "", nil, errRequiredFilter
	}

	names := slices.Sorted(maps.Keys(fields))
	assignments := make([]string, len(names))

	for i, name := range names {
		if !repo.hasColumn(name) {
			return "", nil, fmt.Errorf("unknown column %q", name)
		}

		assignments[i] = fmt.Sprintf("%s = :%s", name, name)
	}

	maps.Copy(args, fields)

	return fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where), args, nil
}

func (repo *Repository[T]) selectList(columns []string) string {
	if len(columns) == 0 {
		return strings.Join(repo.columns, ", ")
	}

	selected := make([]string, 0, len(columns))
	for _, col := range repo.columns {
		if slices.Contains(columns, col) {
			selected = append(selected, col)
		}
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return " WHERE " + clause, args
}

func (repo *Repository[T]) hasColumn(name string) bool {
	return name != "" && slices.Contains(repo.columns, name)
}

func columnsOf(reflectType reflect.Type) []string {
	var columns []string

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
)

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// table maps a row struct onto a postgres table through its db tags.
type table[T any] struct {
	otel    otel.Otel
	name    string
	orderBy string
	columns []string
}

func newTable[T any](otl otel.Otel, name, orderBy string) table[T] {
	var zero T

	return table[T]{
		otel:    otl,
		name:    name,
		orderBy: orderBy,
		columns: getColumns(reflect.TypeOf(zero)),
	}
}

func (t table[T]) selectAll(ctx context.Context, db *sqlx.DB) ([]T, error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.selectAll", constant.OtelRepositoryScopeName, t.name))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(t.columns, ", "), t.name, t.orderBy)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []T

	if err := db.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to select %s: %w", t.name, err)
	}

	return rows, nil
}

// replaceAll empties the table and inserts rows. Callers run it inside a transaction.
func (t table[T]) replaceAll(ctx context.Context, exec execer, rows []T) error {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.replaceAll", constant.OtelRepositoryScopeName, t.name))
	defer scope.End()

	if _, err := exec.ExecContext(ctx, "DELETE FROM "+t.name); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to clear %s: %w", t.name, err)
	}

	if len(rows) == 0 {
		return nil
	}

	placeholders := make([]string, len(t.columns))
	for i, column := range t.columns {
		placeholders[i] = ":" + column
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(t.columns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, rows); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", t.name, err)
	}

	return nil
}

func getColumns(reflectType reflect.Type) []string {
	var columns []string

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != constant.Empty && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

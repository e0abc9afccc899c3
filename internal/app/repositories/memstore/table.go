package memstore

import (
	"maps"
	"slices"

	"github.com/jackc/pgx/v5/pgconn"
)

// table is an id-keyed set of rows with its own sequence, like a BIGSERIAL table.
type table[T any] struct {
	rows map[int64]T
	seq  int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) nextID() int64 {
	t.seq++
	return t.seq
}

// ordered returns rows by ascending id.
func (t *table[T]) ordered() []T {
	out := make([]T, 0, len(t.rows))
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	return &table[T]{rows: maps.Clone(t.rows), seq: t.seq}
}

// uniqueViolation mirrors what Postgres returns for a duplicate key so
// callers classify both stores the same way.
func uniqueViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint \"" + constraint + "\"",
		TableName:      table,
		ConstraintName: constraint,
	}
}

func foreignKeyViolation(table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        "insert or update on table \"" + table + "\" violates foreign key constraint \"" + constraint + "\"",
		TableName:      table,
		ConstraintName: constraint,
	}
}

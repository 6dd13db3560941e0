// Package query builds parameterized PostgreSQL SELECT statements from a
// ProjectionMap with a fluent API and automatic placeholder numbering.
package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     string
	descending  bool
	defaultSort string
}

// NewBuilder creates a Builder for the given projection with a default sort field.
func NewBuilder(projection *ProjectionMap, defaultSort string) *Builder {
	return &Builder{
		projection:  projection,
		conditions:  make([]condition, 0),
		defaultSort: defaultSort,
	}
}

// Build returns an ordered SELECT with the current conditions.
func (b *Builder) Build() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildCount returns a COUNT(*) query with the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where)
	return sql, args
}

// OrderBy sets the sort field and direction. Empty field uses the default sort.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field != "" {
		b.orderBy = b.projection.Column(field)
	}
	b.descending = descending
	return b
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	return b.where(fmt.Sprintf("%s = $%%d", b.projection.Column(field)), value)
}

// WhereAtLeast adds a field >= value condition. Nil values are ignored.
func (b *Builder) WhereAtLeast(field string, value *int) *Builder {
	if value == nil {
		return b
	}
	return b.where(fmt.Sprintf("%s >= $%%d", b.projection.Column(field)), *value)
}

func (b *Builder) where(clause string, args ...any) *Builder {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
	return b
}

func (b *Builder) buildOrderBy() string {
	orderCol := b.orderBy
	if orderCol == "" {
		orderCol = b.projection.Column(b.defaultSort)
	}

	dir := "ASC"
	if b.descending {
		dir = "DESC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", orderCol, dir)
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	paramIdx := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", paramIdx), 1)
			args = append(args, arg)
			paramIdx++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

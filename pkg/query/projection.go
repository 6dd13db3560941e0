package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps Go field names to qualified SQL columns for one table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers column under field. Projection order is the SELECT order.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.fields[field] = qualified
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the SELECT column list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// Column returns the qualified column for field, or field itself when unmapped.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return col
	}
	return field
}

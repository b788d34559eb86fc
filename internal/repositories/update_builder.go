package repositories

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyPatch = errors.New("no fields to update")

// UpdateBuilder renders a parameterized UPDATE for a fixed set of columns.
// Column names only ever come from the allow-list given at construction;
// caller-supplied keys are used for lookup and never written into SQL.
type UpdateBuilder struct {
	table   string
	allowed []string
	extra   []setExpr
}

type setExpr struct {
	sql  string
	args []interface{}
}

func NewUpdateBuilder(table string, allowed ...string) *UpdateBuilder {
	return &UpdateBuilder{table: table, allowed: allowed}
}

// Always appends a SET expression applied on every update, e.g. a touched timestamp.
func (b *UpdateBuilder) Always(expr string, args ...interface{}) *UpdateBuilder {
	b.extra = append(b.extra, setExpr{sql: expr, args: args})
	return b
}

// Build returns the statement and its arguments. Keys of fields that are not
// allow-listed are ignored; if none remain ErrEmptyPatch is returned.
func (b *UpdateBuilder) Build(fields map[string]interface{}, where string, whereArgs ...interface{}) (string, []interface{}, error) {
	sets := make([]string, 0, len(b.allowed)+len(b.extra))
	args := make([]interface{}, 0, len(b.allowed)+len(b.extra)+len(whereArgs))

	for _, column := range b.allowed {
		v, ok := fields[column]
		if !ok {
			continue
		}
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}

	if len(sets) == 0 {
		return "", nil, ErrEmptyPatch
	}

	for _, e := range b.extra {
		sets = append(sets, e.sql)
		args = append(args, e.args...)
	}
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING *", b.table, strings.Join(sets, ", "), where)
	return query, args, nil
}

// Package database builds parameterized SQL statements from a fixed base
// clause plus optional predicates or assignments. Placeholders are numbered
// by append order at render time, never by a field's position in the schema,
// so skipping an optional field can never shift another field's binding.
package database

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoFields is returned when an update is built with zero assignments.
// An empty SET clause is invalid SQL; callers surface this as a client error
// instead of issuing a no-op statement.
var ErrNoFields = errors.New("no fields to update")

type fragment struct {
	clause string
	value  any
}

// SelectBuilder accumulates optional filter predicates on top of a base
// SELECT. Each predicate holds exactly one bound value.
type SelectBuilder struct {
	base    string
	preds   []fragment
	orderBy string
	limit   *int
	offset  *int
}

func NewSelect(base string) *SelectBuilder {
	return &SelectBuilder{base: base}
}

// Where appends one `<column> <op> <placeholder>` predicate. Predicates are
// ANDed in insertion order, which keeps the rendered statement deterministic.
func (b *SelectBuilder) Where(column, op string, value any) *SelectBuilder {
	b.preds = append(b.preds, fragment{clause: column + " " + op, value: value})
	return b
}

// WhereContains matches a case-insensitive substring (name-style fields).
func (b *SelectBuilder) WhereContains(column, value string) *SelectBuilder {
	return b.Where(column, "ILIKE", "%"+escapeLike(value)+"%")
}

// WherePrefix matches a prefix (identifier-style fields).
func (b *SelectBuilder) WherePrefix(column, value string) *SelectBuilder {
	return b.Where(column, "LIKE", escapeLike(value)+"%")
}

func (b *SelectBuilder) OrderBy(clause string) *SelectBuilder {
	b.orderBy = clause
	return b
}

// Limit and Offset are always rendered as bound parameters, never
// interpolated.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// Build renders the statement and its arguments. The first predicate gets
// WHERE, the rest AND; placeholder numbers come from append order.
func (b *SelectBuilder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(b.base)

	args := make([]any, 0, len(b.preds)+2)
	for i, p := range b.preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, p.value)
		fmt.Fprintf(&sb, "%s $%d", p.clause, len(args))
	}

	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit != nil {
		args = append(args, *b.limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if b.offset != nil {
		args = append(args, *b.offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	return sb.String(), args
}

// UpdateBuilder accumulates assignments for a partial UPDATE. An updated_at
// assignment is always appended, and the primary-key WHERE clause binds last.
type UpdateBuilder struct {
	table string
	sets  []fragment
}

func NewUpdate(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, fragment{clause: column, value: value})
	return b
}

// HasFields reports whether any assignment was appended.
func (b *UpdateBuilder) HasFields() bool {
	return len(b.sets) > 0
}

// Build renders `UPDATE <table> SET f1 = $1, ..., updated_at = $n WHERE
// <pkColumn> = $n+1` with the arguments in matching order. Returns
// ErrNoFields when nothing was set.
func (b *UpdateBuilder) Build(pkColumn string, pkValue any) (string, []any, error) {
	if len(b.sets) == 0 {
		return "", nil, ErrNoFields
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")

	args := make([]any, 0, len(b.sets)+2)
	for i, s := range b.sets {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, s.value)
		fmt.Fprintf(&sb, "%s = $%d", s.clause, len(args))
	}

	args = append(args, time.Now().UTC())
	fmt.Fprintf(&sb, ", updated_at = $%d", len(args))

	args = append(args, pkValue)
	fmt.Fprintf(&sb, " WHERE %s = $%d", pkColumn, len(args))

	return sb.String(), args, nil
}

// escapeLike neutralizes LIKE metacharacters in user-supplied match text so
// a filter value of "100%" matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

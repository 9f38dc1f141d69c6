// Package query assembles SQL statements from two kinds of input kept apart
// by the type system: structural tokens (identifiers, sort direction,
// LIMIT/OFFSET counts) that have passed a closed-set or numeric check and
// are embedded in the text, and data values that are only ever bound as
// $n parameters.
package query

import (
	"strconv"
	"strings"
)

// static is statement text written by the programmer. Being unexported, a
// value of this type can only come from an untyped string constant at the
// call site, never from a runtime string.
type static string

// Builder accumulates statement text and bound arguments.
type Builder struct {
	sb   strings.Builder
	args []any
}

// SQL appends constant statement text.
func (b *Builder) SQL(text static) *Builder {
	b.sb.WriteString(string(text))
	return b
}

// Ident appends a validated identifier.
func (b *Builder) Ident(id Ident) *Builder {
	b.sb.WriteString(id.name)
	return b
}

// Arg binds v and appends its placeholder.
func (b *Builder) Arg(v any) *Builder {
	b.args = append(b.args, v)
	b.sb.WriteString("$")
	b.sb.WriteString(strconv.Itoa(len(b.args)))
	return b
}

// OrderBy appends an ORDER BY clause.
func (b *Builder) OrderBy(col SortColumn, dir Direction) *Builder {
	b.sb.WriteString(" ORDER BY ")
	b.sb.WriteString(col.expr)
	b.sb.WriteString(" ")
	b.sb.WriteString(dir.keyword)
	return b
}

// Limit appends a LIMIT clause.
func (b *Builder) Limit(n Count) *Builder {
	b.sb.WriteString(" LIMIT ")
	b.sb.WriteString(strconv.Itoa(n.n))
	return b
}

// Offset appends an OFFSET clause.
func (b *Builder) Offset(n Count) *Builder {
	b.sb.WriteString(" OFFSET ")
	b.sb.WriteString(strconv.Itoa(n.n))
	return b
}

// Build returns the statement and its arguments in placeholder order.
func (b *Builder) Build() (string, []any) {
	args := make([]any, len(b.args))
	copy(args, b.args)
	return b.sb.String(), args
}

// Package query builds item predicates and pagination windows for listings.
//
// A predicate renders to a SQLite WHERE clause and can also be evaluated
// against an in-memory item; both forms must agree.
package query

import (
	"strings"

	"github.com/erazemk/lostfound/internal/model"
)

// Field is an item attribute usable in a predicate.
type Field int

// Filterable item fields.
const (
	Type Field = iota
	Status
	Category
	Location
	Date
	Title
	Description
)

func (f Field) column() string {
	switch f {
	case Type:
		return "type"
	case Status:
		return "status"
	case Category:
		return "category"
	case Location:
		return "location"
	case Date:
		return "date"
	case Title:
		return "title"
	case Description:
		return "description"
	}
	panic("query: unknown field")
}

func (f Field) value(it *model.Item) string {
	switch f {
	case Type:
		return it.Type
	case Status:
		return it.Status
	case Category:
		return it.Category
	case Location:
		return it.Location
	case Date:
		return it.Date
	case Title:
		return it.Title
	case Description:
		return it.Description
	}
	panic("query: unknown field")
}

// Pred is a boolean condition over items.
type Pred interface {
	// Match reports whether it satisfies the predicate.
	Match(it *model.Item) bool

	appendSQL(b *strings.Builder, args []any) []any
}

// Eq requires an exact, case-sensitive match.
func Eq(f Field, value string) Pred {
	return eq{field: f, value: value}
}

// Contains requires a case-insensitive substring match. Case folding is
// ASCII-only, the same as SQLite's lower().
func Contains(f Field, value string) Pred {
	return contains{field: f, value: value}
}

// And is satisfied when every operand is. With no operands it is always true.
func And(preds ...Pred) Pred {
	return and(compact(preds))
}

// Or is satisfied when at least one operand is. With no operands it is
// always false.
func Or(preds ...Pred) Pred {
	return or(compact(preds))
}

// SQL renders p as the body of a WHERE clause with positional arguments.
// A nil predicate matches everything.
func SQL(p Pred) (string, []any) {
	if p == nil {
		return "1 = 1", nil
	}
	var b strings.Builder
	args := p.appendSQL(&b, nil)
	return b.String(), args
}

type eq struct {
	field Field
	value string
}

func (p eq) Match(it *model.Item) bool {
	return p.field.value(it) == p.value
}

func (p eq) appendSQL(b *strings.Builder, args []any) []any {
	b.WriteString(p.field.column())
	b.WriteString(" = ?")
	return append(args, p.value)
}

type contains struct {
	field Field
	value string
}

func (p contains) Match(it *model.Item) bool {
	return strings.Contains(lowerASCII(p.field.value(it)), lowerASCII(p.value))
}

func (p contains) appendSQL(b *strings.Builder, args []any) []any {
	b.WriteString("instr(lower(")
	b.WriteString(p.field.column())
	b.WriteString("), lower(?)) > 0")
	return append(args, p.value)
}

type and []Pred

func (p and) Match(it *model.Item) bool {
	for _, q := range p {
		if !q.Match(it) {
			return false
		}
	}
	return true
}

func (p and) appendSQL(b *strings.Builder, args []any) []any {
	return joinSQL(b, args, p, " AND ", "1 = 1")
}

type or []Pred

func (p or) Match(it *model.Item) bool {
	for _, q := range p {
		if q.Match(it) {
			return true
		}
	}
	return false
}

func (p or) appendSQL(b *strings.Builder, args []any) []any {
	return joinSQL(b, args, p, " OR ", "1 = 0")
}

func joinSQL(b *strings.Builder, args []any, preds []Pred, sep, empty string) []any {
	if len(preds) == 0 {
		b.WriteString(empty)
		return args
	}
	if len(preds) == 1 {
		return preds[0].appendSQL(b, args)
	}
	b.WriteByte('(')
	for i, q := range preds {
		if i > 0 {
			b.WriteString(sep)
		}
		args = q.appendSQL(b, args)
	}
	b.WriteByte(')')
	return args
}

func compact(preds []Pred) []Pred {
	out := make([]Pred, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// Package query builds parameterised WHERE clauses from (field, op, value)
// constraints. Field names are mapped through a whitelist so user input
// never reaches the SQL text.
package query

import (
	"fmt"
	"strings"
)

type Op string

const (
	Eq  Op = "="
	Gt  Op = ">"
	Gte Op = ">="
	Lt  Op = "<"
	Lte Op = "<="
	Ne  Op = "<>"
)

func (o Op) valid() bool {
	switch o {
	case Eq, Gt, Gte, Lt, Lte, Ne:
		return true
	}
	return false
}

type Predicate struct {
	Field string
	Op    Op
	Value any
}

type Builder struct {
	columns    map[string]string
	predicates []Predicate
}

// NewBuilder returns a builder that accepts only the given fields. The map
// goes from field name to column expression.
func NewBuilder(columns map[string]string) *Builder {
	return &Builder{columns: columns}
}

func (b *Builder) Where(field string, op Op, value any) *Builder {
	b.predicates = append(b.predicates, Predicate{Field: field, Op: op, Value: value})
	return b
}

func (b *Builder) Len() int {
	return len(b.predicates)
}

// Build ANDs every predicate together. Placeholders are numbered from
// start, so callers can append further arguments after the returned ones.
// An empty builder yields an empty clause.
func (b *Builder) Build(start int) (string, []any, error) {
	if len(b.predicates) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(b.predicates))
	args := make([]any, 0, len(b.predicates))
	idx := start
	for _, p := range b.predicates {
		column, ok := b.columns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("query: unknown field %q", p.Field)
		}
		if !p.Op.valid() {
			return "", nil, fmt.Errorf("query: unsupported operator %q for %s", p.Op, p.Field)
		}
		parts = append(parts, fmt.Sprintf("%s %s $%d", column, p.Op, idx))
		args = append(args, p.Value)
		idx++
	}

	return "WHERE " + strings.Join(parts, " AND "), args, nil
}

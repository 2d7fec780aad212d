// Package query assembles SELECT statements from ordered predicate lists.
//
// Predicates are reduced in the order they were added; every value is
// appended to the argument slice at the moment its placeholder is written,
// so the Nth placeholder ($N) always refers to the Nth argument.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

type Op string

const (
	Eq      Op = "="
	Gte     Op = ">="
	Lte     Op = "<="
	Between Op = "BETWEEN"
	// Like matches a case-folded substring.
	Like Op = "LIKE"
)

// Predicate is a single {column, operator, values} filter.
type Predicate struct {
	Column string
	Op     Op
	Values []any
}

func Equal(column string, v any) Predicate {
	return Predicate{Column: column, Op: Eq, Values: []any{v}}
}

func AtLeast(column string, v any) Predicate {
	return Predicate{Column: column, Op: Gte, Values: []any{v}}
}

func AtMost(column string, v any) Predicate {
	return Predicate{Column: column, Op: Lte, Values: []any{v}}
}

// InRange is an inclusive lo..hi range.
func InRange(column string, lo, hi any) Predicate {
	return Predicate{Column: column, Op: Between, Values: []any{lo, hi}}
}

// likeEscaper makes LIKE metacharacters in user text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains matches rows whose column holds s as a case-insensitive substring.
func Contains(column, s string) Predicate {
	return Predicate{Column: column, Op: Like, Values: []any{"%" + likeEscaper.Replace(strings.ToLower(s)) + "%"}}
}

func (p Predicate) arity() int {
	if p.Op == Between {
		return 2
	}
	return 1
}

func (p Predicate) validate() error {
	if strings.TrimSpace(p.Column) == "" {
		return fmt.Errorf("predicate has empty column")
	}
	switch p.Op {
	case Eq, Gte, Lte, Between, Like:
	default:
		return fmt.Errorf("unsupported operator %q on %s", p.Op, p.Column)
	}
	if len(p.Values) != p.arity() {
		return fmt.Errorf("operator %s on %s takes %d values, got %d", p.Op, p.Column, p.arity(), len(p.Values))
	}
	return nil
}

// render writes the predicate, binding values through bind.
func (p Predicate) render(bind func(any) string) string {
	switch p.Op {
	case Between:
		lo := bind(p.Values[0])
		hi := bind(p.Values[1])
		return p.Column + " BETWEEN " + lo + " AND " + hi
	case Like:
		return "LOWER(" + p.Column + ") LIKE " + bind(p.Values[0]) + ` ESCAPE '\'`
	default:
		return p.Column + " " + string(p.Op) + " " + bind(p.Values[0])
	}
}

// Placeholder returns the positional placeholder for the 1-based index n.
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

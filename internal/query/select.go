package query

import (
	"strings"
)

// Select is a single-table-expression SELECT with optional WHERE, GROUP BY,
// HAVING, ORDER BY and LIMIT parts.
type Select struct {
	columns string
	from    string
	where   []Predicate
	groupBy string
	having  []Predicate
	orderBy string
	limit   int
}

func NewSelect(columns, from string) *Select {
	return &Select{columns: columns, from: from}
}

func (s *Select) Where(preds ...Predicate) *Select {
	s.where = append(s.where, preds...)
	return s
}

func (s *Select) GroupBy(expr string) *Select {
	s.groupBy = expr
	return s
}

// Having adds predicates evaluated after grouping.
func (s *Select) Having(preds ...Predicate) *Select {
	s.having = append(s.having, preds...)
	return s
}

func (s *Select) OrderBy(expr string) *Select {
	s.orderBy = expr
	return s
}

// Limit sets a bound LIMIT. Values <= 0 leave the query unbounded.
func (s *Select) Limit(n int) *Select {
	s.limit = n
	return s
}

// Build reduces the statement into SQL text and its positional arguments.
func (s *Select) Build() (string, []any, error) {
	for _, p := range s.where {
		if err := p.validate(); err != nil {
			return "", nil, err
		}
	}
	for _, p := range s.having {
		if err := p.validate(); err != nil {
			return "", nil, err
		}
	}

	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return Placeholder(len(args))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(s.columns)
	b.WriteString("\nFROM ")
	b.WriteString(s.from)

	writeConjunction(&b, "WHERE", s.where, bind)

	if s.groupBy != "" {
		b.WriteString("\nGROUP BY ")
		b.WriteString(s.groupBy)
	}

	writeConjunction(&b, "HAVING", s.having, bind)

	if s.orderBy != "" {
		b.WriteString("\nORDER BY ")
		b.WriteString(s.orderBy)
	}

	if s.limit > 0 {
		b.WriteString("\nLIMIT ")
		b.WriteString(bind(s.limit))
	}

	return b.String(), args, nil
}

func writeConjunction(b *strings.Builder, keyword string, preds []Predicate, bind func(any) string) {
	if len(preds) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(keyword)
	b.WriteString(" ")
	for i, p := range preds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(p.render(bind))
	}
}

package query

import "strings"

// Cond is one optional equality filter. Columns are trusted identifiers
// written by the caller; values are always bound as parameters.
type Cond struct {
	column string
	value  any
	set    bool
}

// Eq filters column by *v, or contributes nothing when v is nil.
func Eq[T any](column string, v *T) Cond {
	if v == nil {
		return Cond{column: column}
	}
	return Cond{column: column, value: *v, set: true}
}

// Where appends the supplied conditions to base as one conjunctive WHERE
// clause, in the order given. It returns the query text with one ? per
// supplied value and the values to bind in the same order. With no supplied
// conditions base is returned unchanged with an empty, non-nil value list.
func Where(base string, conds ...Cond) (string, []any) {
	args := []any{}
	var clauses []string
	for _, c := range conds {
		if !c.set {
			continue
		}
		clauses = append(clauses, c.column+" = ?")
		args = append(args, c.value)
	}
	if len(clauses) == 0 {
		return base, args
	}
	return base + " WHERE " + strings.Join(clauses, " AND "), args
}

package employees

import (
	"strings"

	"gorm.io/gorm"
)

// ListFilter holds the optional directory filters. Each set field becomes one
// bound predicate; values are never interpolated into SQL.
type ListFilter struct {
	StoreID   string
	CompanyID string
	Limit     int
}

type predicate struct {
	expr string
	args []any
}

// predicates returns the WHERE clauses for the filter. Only active
// employees are ever listed.
func (f ListFilter) predicates() []predicate {
	preds := []predicate{{expr: "e.is_active = ?", args: []any{true}}}
	if v := strings.TrimSpace(f.StoreID); v != "" {
		preds = append(preds, predicate{expr: "e.store_id = ?", args: []any{v}})
	}
	if v := strings.TrimSpace(f.CompanyID); v != "" {
		preds = append(preds, predicate{expr: "e.company_id = ?", args: []any{v}})
	}
	return preds
}

func (f ListFilter) apply(q *gorm.DB) *gorm.DB {
	for _, p := range f.predicates() {
		q = q.Where(p.expr, p.args...)
	}
	return q
}

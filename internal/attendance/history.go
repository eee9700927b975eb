package attendance

import "gorm.io/gorm"

// HistoryFilter selects one employee's records. From and To are inclusive
// YYYY-MM-DD dates; stamps sort lexically so string comparison is exact.
type HistoryFilter struct {
	EmployeeID string
	From       string
	To         string
	Limit      int
}

func (f HistoryFilter) apply(q *gorm.DB) *gorm.DB {
	q = q.Where("employee_id = ?", f.EmployeeID)
	if f.From != "" {
		q = q.Where("check_date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("check_date <= ?", f.To)
	}
	return q
}

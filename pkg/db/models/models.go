package models

// All lists every persisted model, in foreign-key order, for test schemas.
func All() []any {
	return []any{
		&Position{},
		&Store{},
		&Employee{},
		&Session{},
		&Attendance{},
		&PendingRegistration{},
	}
}

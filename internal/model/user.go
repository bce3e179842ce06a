package model

import "time"

// User is a portal member keyed by HR badge number.
type User struct {
	Badge     int64
	Email     *string
	FirstName string
	LastName  string
	Position  *string
	ReadOnly  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package model

import "time"

// Accomplishment is one user's timesheet for one exact week.
// (UserBadge, StartWeekDate, EndWeekDate) is the natural key: the store
// enforces at most one row per triple. Dates are YYYY-MM-DD strings.
type Accomplishment struct {
	ID              int64
	UserBadge       int64
	ApplicationID   *int64
	Accomplishments string
	StartWeekDate   string
	EndWeekDate     string
	DateSubmitted   string
	TaskStatus      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

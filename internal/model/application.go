package model

import "time"

// Application is a deployed app tracked by the team, with optional
// dev/prod server references.
type Application struct {
	ID             int64
	OwnerBadge     *int64
	AppName        string
	AppDescription *string
	Status         *string
	DevServerID    *int64
	ProdServerID   *int64
	DevDomain      *string
	LastUpdated    *time.Time
	LastUpdatedBy  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

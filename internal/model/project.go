package model

import "time"

type Project struct {
	ID          int64
	Name        string
	Description string
	Status      string
	GithubURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

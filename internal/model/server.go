package model

import "time"

type Server struct {
	ID          int64
	Hostname    string
	IPAddress   string
	OS          string
	Status      string
	Environment string
	Role        string
	Location    string
	Folder      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

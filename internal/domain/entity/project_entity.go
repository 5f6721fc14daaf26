package entity

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPlanned   ProjectStatus = "planned"
)

// ProjectStat is a headline figure shown on a project card, e.g. {"1200", "families reached"}.
type ProjectStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Project is a program run by the organization, addressed publicly by slug.
type Project struct {
	ID               string
	Slug             string
	Title            string
	Subtitle         string
	ShortDescription string
	Description      string
	Icon             string
	Gradient         string
	Status           ProjectStatus
	StartDate        *time.Time
	EndDate          *time.Time
	Stats            []ProjectStat
	Features         []string
	CreatedBy        string // user id of the admin who created it
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

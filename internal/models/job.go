package models

import "time"

type Job struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Company     string    `db:"company" json:"company"`
	Location    string    `db:"location" json:"location"`
	Type        string    `db:"type" json:"type"` // Full-time, Internship, ...
	Salary      string    `db:"salary" json:"salary"`
	Description string    `db:"description" json:"description"`
	Tags        string    `db:"tags" json:"tags"` // comma separated
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	RecruiterID int64     `db:"recruiter_id" json:"recruiterId"`
}

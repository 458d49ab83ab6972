package models

import "time"

const (
	ApplicationStatusPending      = "Pending"
	ApplicationStatusInterviewing = "Interviewing"
	ApplicationStatusAccepted     = "Accepted"
	ApplicationStatusRejected     = "Rejected"
)

type Application struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"studentId"`
	JobID     int64     `db:"job_id" json:"jobId"`
	Status    string    `db:"status" json:"status"`
	AppliedAt time.Time `db:"applied_at" json:"appliedAt"`

	// copies of the job at apply time, refreshed from jobs on read
	JobTitle    string `db:"job_title" json:"jobTitle"`
	CompanyName string `db:"company_name" json:"companyName"`
}

package models

import "time"

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"

	DefaultLanguage = "English (US)"
)

type User struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
	Password  string `db:"password" json:"-"` // bcrypt hash
	Role      string `db:"role" json:"role"`
	Bio       string `db:"bio" json:"bio"`
	Location  string `db:"location" json:"location"`

	// social links
	Github   string `db:"github" json:"github"`
	Linkedin string `db:"linkedin" json:"linkedin"`
	Website  string `db:"website" json:"website"`

	// settings
	Language          string `db:"language" json:"language"`
	DarkMode          bool   `db:"dark_mode" json:"darkMode"`
	NotifMessages     bool   `db:"notif_messages" json:"notifMessages"`
	NotifApplications bool   `db:"notif_applications" json:"notifApplications"`
	NotifMarketing    bool   `db:"notif_marketing" json:"notifMarketing"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewUser returns a user with the default settings applied.
func NewUser() *User {
	return &User{
		Language:          DefaultLanguage,
		NotifMessages:     true,
		NotifApplications: true,
	}
}

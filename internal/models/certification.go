package models

type Certification struct {
	ID            int64  `db:"id" json:"id"`
	UserID        int64  `db:"user_id" json:"userId"`
	Name          string `db:"name" json:"name"`
	Issuer        string `db:"issuer" json:"issuer"`
	IssueDate     Date   `db:"issue_date" json:"issueDate"`
	CredentialURL string `db:"credential_url" json:"credentialUrl"`
}

package models

type Project struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"userId"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Link        string `db:"link" json:"link"`
	Github      string `db:"github" json:"github"`
	Tags        string `db:"tags" json:"tags"` // comma separated
}

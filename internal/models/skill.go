package models

type Skill struct {
	ID                int64  `db:"id" json:"id"`
	UserID            int64  `db:"user_id" json:"userId"`
	Name              string `db:"name" json:"name"`
	Level             string `db:"level" json:"level"` // Beginner, Intermediate, Advanced, Expert
	Category          string `db:"category" json:"category"`
	YearsOfExperience int    `db:"years_of_experience" json:"yearsOfExperience"`
	IsLearningPath    bool   `db:"is_learning_path" json:"isLearningPath"`
}

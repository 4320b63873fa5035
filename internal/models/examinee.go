package models

import "time"

// Examinee is a student profile. CurrentAbility carries the latest theta
// estimate between sessions so a new assessment starts where the last one
// ended instead of at zero.
type Examinee struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	FullName         string    `bson:"full_name" json:"full_name"`
	GradeLevel       string    `bson:"grade_level,omitempty" json:"grade_level,omitempty"`
	CurrentAbility   float64   `bson:"current_ability" json:"current_ability"`
	AssessmentsTaken int       `bson:"assessments_taken" json:"assessments_taken"`
	LastAssessedAt   time.Time `bson:"last_assessed_at,omitempty" json:"last_assessed_at,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

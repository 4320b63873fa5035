package models

import "time"

// ItemResponse is the persisted record of a single submitted response,
// kept alongside the session's in-document history for reporting.
type ItemResponse struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	SessionID        string    `bson:"session_id" json:"session_id"`
	ExamineeID       string    `bson:"examinee_id" json:"examinee_id"`
	ItemID           string    `bson:"item_id" json:"item_id"`
	SelectedOption   string    `bson:"selected_option" json:"selected_option"`
	Correct          bool      `bson:"correct" json:"correct"`
	ThetaBefore      float64   `bson:"theta_before" json:"theta_before"`
	ThetaAfter       float64   `bson:"theta_after" json:"theta_after"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	Sequence         int       `bson:"sequence" json:"sequence"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}

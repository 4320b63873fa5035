package models

import "fmt"

// Item categories (fixed taxonomy used by the literacy item bank)
const (
	CategoryOralLanguage         = "oral_language"
	CategoryWordKnowledge        = "word_knowledge"
	CategoryReadingComprehension = "reading_comprehension"
	CategoryLanguageStructure    = "language_structure"
)

// Item types
const (
	ItemTypeMultipleChoice = "multiple_choice"
	ItemTypePronunciation  = "pronunciation"
	ItemTypeReadingPassage = "reading_passage"
)

// Item is a calibrated test question. Items are immutable once calibrated:
// they are authored/loaded once and read-only during assessment.
type Item struct {
	ID            string `bson:"_id,omitempty" json:"item_id"`
	Category      string `bson:"category" json:"category"`
	Type          string `bson:"type" json:"type"`
	QuestionText  string `bson:"question_text" json:"question_text"`
	PassageText   string `bson:"passage_text,omitempty" json:"passage_text,omitempty"`
	AudioRef      string `bson:"audio_ref,omitempty" json:"audio_ref,omitempty"`
	ImageRef      string `bson:"image_ref,omitempty" json:"image_ref,omitempty"`
	OptionA       string `bson:"option_a,omitempty" json:"option_a,omitempty"`
	OptionB       string `bson:"option_b,omitempty" json:"option_b,omitempty"`
	OptionC       string `bson:"option_c,omitempty" json:"option_c,omitempty"`
	OptionD       string `bson:"option_d,omitempty" json:"option_d,omitempty"`
	CorrectOption string `bson:"correct_option" json:"correct_option"`

	// IRT calibration parameters (3PL model)
	Discrimination float64 `bson:"discrimination" json:"discrimination"` // a, must be > 0
	Difficulty     float64 `bson:"difficulty" json:"difficulty"`         // b, typically [-3, 3]
	Guessing       float64 `bson:"guessing" json:"guessing"`             // c, in [0, 1); 0 for 2PL
}

// Validate checks the calibration parameters. A non-positive discrimination
// makes the response probability non-monotonic, so such items must never
// enter the selection pool.
func (it *Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item has no id")
	}
	if it.Discrimination <= 0 {
		return fmt.Errorf("item %s: discrimination must be > 0, got %v", it.ID, it.Discrimination)
	}
	if it.Guessing < 0 || it.Guessing >= 1 {
		return fmt.Errorf("item %s: guessing must be in [0, 1), got %v", it.ID, it.Guessing)
	}
	switch it.Category {
	case CategoryOralLanguage, CategoryWordKnowledge, CategoryReadingComprehension, CategoryLanguageStructure:
	default:
		return fmt.Errorf("item %s: unknown category %q", it.ID, it.Category)
	}
	switch it.Type {
	case ItemTypeMultipleChoice, ItemTypePronunciation, ItemTypeReadingPassage:
	default:
		return fmt.Errorf("item %s: unknown type %q", it.ID, it.Type)
	}
	if it.Type != ItemTypePronunciation && it.CorrectOption == "" {
		return fmt.Errorf("item %s: correct_option is required", it.ID)
	}
	return nil
}

// IsCorrectAnswer reports whether the selected option matches the keyed
// answer. The service is the single authority for correctness; clients
// never decide this themselves.
func (it *Item) IsCorrectAnswer(selected string) bool {
	return selected != "" && selected == it.CorrectOption
}

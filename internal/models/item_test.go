package models

import "testing"

func validItem() Item {
	return Item{
		ID:             "q1",
		Category:       CategoryWordKnowledge,
		Type:           ItemTypeMultipleChoice,
		QuestionText:   "Which word means happy?",
		OptionA:        "glad",
		OptionB:        "sad",
		OptionC:        "mad",
		OptionD:        "bad",
		CorrectOption:  "A",
		Discrimination: 1.2,
		Difficulty:     0.5,
		Guessing:       0.25,
	}
}

func TestItemValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Item)
		wantErr bool
	}{
		{"valid item", func(it *Item) {}, false},
		{"missing id", func(it *Item) { it.ID = "" }, true},
		{"zero discrimination", func(it *Item) { it.Discrimination = 0 }, true},
		{"negative discrimination", func(it *Item) { it.Discrimination = -0.5 }, true},
		{"negative guessing", func(it *Item) { it.Guessing = -0.1 }, true},
		{"guessing at one", func(it *Item) { it.Guessing = 1.0 }, true},
		{"guessing zero is valid", func(it *Item) { it.Guessing = 0 }, false},
		{"unknown category", func(it *Item) { it.Category = "math" }, true},
		{"unknown type", func(it *Item) { it.Type = "essay" }, true},
		{"missing correct option", func(it *Item) { it.CorrectOption = "" }, true},
		{"pronunciation needs no correct option", func(it *Item) {
			it.Type = ItemTypePronunciation
			it.CorrectOption = ""
			it.AudioRef = "audio/q1.mp3"
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			it := validItem()
			tc.mutate(&it)
			err := it.Validate()
			if tc.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected valid item, got %v", err)
			}
		})
	}
}

func TestIsCorrectAnswer(t *testing.T) {
	it := validItem()

	if !it.IsCorrectAnswer("A") {
		t.Error("Keyed option should be correct")
	}
	if it.IsCorrectAnswer("B") {
		t.Error("Non-keyed option should be incorrect")
	}
	if it.IsCorrectAnswer("") {
		t.Error("Empty selection should never be correct")
	}
}

func TestSessionHelpers(t *testing.T) {
	s := AssessmentSession{}
	if s.CorrectCount() != 0 || s.Accuracy() != 0 {
		t.Error("Empty session should report zero correct and zero accuracy")
	}

	s.ItemsAdministered = []string{"q1", "q2", "q3", "q4"}
	s.Responses = []RecordedResponse{
		{ItemID: "q1", Correct: true},
		{ItemID: "q2", Correct: false},
		{ItemID: "q3", Correct: true},
		{ItemID: "q4", Correct: true},
	}

	if got := s.CorrectCount(); got != 3 {
		t.Errorf("Expected 3 correct, got %d", got)
	}
	if got := s.Accuracy(); got != 0.75 {
		t.Errorf("Expected accuracy 0.75, got %v", got)
	}
	if !s.HasAdministered("q2") {
		t.Error("q2 should be marked administered")
	}
	if s.HasAdministered("q9") {
		t.Error("q9 should not be marked administered")
	}
}

package bank

import (
	"testing"

	"assessment-service/internal/models"
)

func calibratedItem(id, category string, difficulty float64) models.Item {
	return models.Item{
		ID:             id,
		Category:       category,
		Type:           models.ItemTypeMultipleChoice,
		QuestionText:   "question " + id,
		OptionA:        "A",
		OptionB:        "B",
		OptionC:        "C",
		OptionD:        "D",
		CorrectOption:  "A",
		Discrimination: 1.0,
		Difficulty:     difficulty,
		Guessing:       0,
	}
}

func TestNewRejectsInvalidItems(t *testing.T) {
	items := []models.Item{
		calibratedItem("q1", models.CategoryWordKnowledge, 0),
		calibratedItem("q2", models.CategoryOralLanguage, 0.5),
	}

	bad := calibratedItem("q3", models.CategoryWordKnowledge, 0)
	bad.Discrimination = -1.0 // fails calibration validation
	items = append(items, bad)

	badGuess := calibratedItem("q4", models.CategoryWordKnowledge, 0)
	badGuess.Guessing = 1.0
	items = append(items, badGuess)

	b, rejected := New(items)
	if b.Size() != 2 {
		t.Errorf("Expected 2 valid items in pool, got %d", b.Size())
	}
	if len(rejected) != 2 {
		t.Errorf("Expected 2 rejected items, got %d", len(rejected))
	}
	if _, ok := b.Get("q3"); ok {
		t.Error("Invalid item q3 should not be in the pool")
	}
	if _, ok := b.Get("q1"); !ok {
		t.Error("Valid item q1 should be in the pool")
	}
}

func TestNewDeduplicatesIDs(t *testing.T) {
	items := []models.Item{
		calibratedItem("q1", models.CategoryWordKnowledge, 0),
		calibratedItem("q1", models.CategoryWordKnowledge, 1.0),
	}
	b, _ := New(items)
	if b.Size() != 1 {
		t.Errorf("Expected duplicate id to be dropped, pool size %d", b.Size())
	}
	it, _ := b.Get("q1")
	if it.Difficulty != 0 {
		t.Errorf("First occurrence should win, got difficulty %v", it.Difficulty)
	}
}

func TestByCategory(t *testing.T) {
	items := []models.Item{
		calibratedItem("q2", models.CategoryWordKnowledge, 0),
		calibratedItem("q1", models.CategoryWordKnowledge, 0.5),
		calibratedItem("q3", models.CategoryOralLanguage, -0.5),
	}
	b, _ := New(items)

	wk := b.ByCategory(models.CategoryWordKnowledge)
	if len(wk) != 2 {
		t.Fatalf("Expected 2 word knowledge items, got %d", len(wk))
	}
	if wk[0].ID != "q1" || wk[1].ID != "q2" {
		t.Errorf("Expected id order q1, q2; got %s, %s", wk[0].ID, wk[1].ID)
	}
	if got := b.ByCategory(models.CategoryReadingComprehension); len(got) != 0 {
		t.Errorf("Expected empty slice for absent category, got %d items", len(got))
	}
}

func TestUnadministered(t *testing.T) {
	items := []models.Item{
		calibratedItem("q1", models.CategoryWordKnowledge, 0),
		calibratedItem("q2", models.CategoryWordKnowledge, 0.5),
		calibratedItem("q3", models.CategoryOralLanguage, -0.5),
	}
	b, _ := New(items)

	testCases := []struct {
		name     string
		exclude  []string
		category string
		expected []string
	}{
		{"nothing administered", nil, "", []string{"q1", "q2", "q3"}},
		{"one administered", []string{"q2"}, "", []string{"q1", "q3"}},
		{"all administered", []string{"q1", "q2", "q3"}, "", nil},
		{"category filter", []string{"q1"}, models.CategoryWordKnowledge, []string{"q2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Unadministered(tc.exclude, tc.category)
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected %d eligible items, got %d", len(tc.expected), len(got))
			}
			for i, it := range got {
				if it.ID != tc.expected[i] {
					t.Errorf("Position %d: expected %s, got %s", i, tc.expected[i], it.ID)
				}
			}
		})
	}
}

func TestCategories(t *testing.T) {
	items := []models.Item{
		calibratedItem("q1", models.CategoryWordKnowledge, 0),
		calibratedItem("q2", models.CategoryOralLanguage, 0),
	}
	b, _ := New(items)

	cats := b.Categories()
	if len(cats) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(cats))
	}
	if cats[0] != models.CategoryOralLanguage || cats[1] != models.CategoryWordKnowledge {
		t.Errorf("Expected sorted categories, got %v", cats)
	}
}

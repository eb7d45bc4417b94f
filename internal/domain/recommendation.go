package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Difficulty describes how hard a recommendation is to act on
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Recommendation is an advisory record. Lower PriorityLevel means more urgent.
type Recommendation struct {
	ID                       uuid.UUID
	Title                    string
	Description              string
	PriorityLevel            int
	Category                 string
	PotentialSavings         *decimal.Decimal // nil when the advice has no quantified figure
	ImplementationDifficulty Difficulty
	IsApplied                bool
	IsDismissed              bool
	DateGenerated            time.Time
}

// NewRecommendation creates a recommendation with a fresh identity
func NewRecommendation(title, description string, priority int, category string, difficulty Difficulty) Recommendation {
	return Recommendation{
		ID:                       uuid.New(),
		Title:                    title,
		Description:              description,
		PriorityLevel:            priority,
		Category:                 category,
		ImplementationDifficulty: difficulty,
		DateGenerated:            time.Now(),
	}
}

// WithSavings returns a copy carrying a quantified savings estimate
func (r Recommendation) WithSavings(amount decimal.Decimal) Recommendation {
	r.PotentialSavings = &amount
	return r
}

// Apply marks the recommendation as acted upon
func (r *Recommendation) Apply() {
	r.IsApplied = true
}

// Dismiss marks the recommendation as ignored by the user
func (r *Recommendation) Dismiss() {
	r.IsDismissed = true
}

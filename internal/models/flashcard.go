package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Validation errors returned by BuildFlashCard. The checks run in a fixed
// order and the first failure wins.
var (
	ErrEmptyQuestion     = errors.New("Question field cannot be empty.")
	ErrEmptyAnswer       = errors.New("Answer field cannot be empty.")
	ErrEmptyTopic        = errors.New("Topic field cannot be empty.")
	ErrEmptyTags         = errors.New("Tags field cannot be empty.")
	ErrInvalidDifficulty = errors.New("Invalid difficulty level. Difficulty must be between 1 and 5")
)

// FlashCard represents a flashcard row in the database.
type FlashCard struct {
	ID         uuid.UUID      `json:"id" db:"id"`                 // Primary key
	Question   string         `json:"question" db:"question"`     // Unique question text
	Answer     string         `json:"answer" db:"answer"`         // Answer text
	Topic      string         `json:"topic" db:"topic"`           // Topic used for categorical filtering
	Tags       pq.StringArray `json:"tags" db:"tags"`             // Set of tags for membership filtering
	Difficulty int            `json:"difficulty" db:"difficulty"` // Difficulty level, 1 to 5
	CreatedAt  time.Time      `json:"created_at" db:"created_at"` // Creation timestamp, never mutated
	UpdatedAt  *time.Time     `json:"updated_at" db:"updated_at"` // Nil until the first update
}

// NewFlashCard is the creation input. All fields are mandatory.
type NewFlashCard struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Topic      string   `json:"topic"`
	Tags       []string `json:"tags"`
	Difficulty int      `json:"difficulty"`
}

// UpdatedFlashCard is the partial-update input. Absent fields leave the
// stored value unchanged.
type UpdatedFlashCard struct {
	Question   *string   `json:"question"`
	Answer     *string   `json:"answer"`
	Topic      *string   `json:"topic"`
	Tags       *[]string `json:"tags"`
	Difficulty *int      `json:"difficulty"`
}

// BuildFlashCard validates a creation input and turns it into a storable
// flashcard with a fresh id and creation timestamp. It performs no I/O.
func BuildFlashCard(input NewFlashCard) (*FlashCard, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	if len(input.Tags) == 0 {
		return nil, ErrEmptyTags
	}

	if input.Difficulty < 1 || input.Difficulty > 5 {
		return nil, ErrInvalidDifficulty
	}

	return &FlashCard{
		ID:         uuid.New(),
		Question:   question,
		Answer:     answer,
		Topic:      topic,
		Tags:       pq.StringArray(input.Tags),
		Difficulty: input.Difficulty,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ValidatePatch applies the same rules as BuildFlashCard to the fields
// present in a partial update, so no update can break the invariants a
// created card satisfies.
func ValidatePatch(patch UpdatedFlashCard) error {
	if patch.Question != nil && strings.TrimSpace(*patch.Question) == "" {
		return ErrEmptyQuestion
	}
	if patch.Answer != nil && strings.TrimSpace(*patch.Answer) == "" {
		return ErrEmptyAnswer
	}
	if patch.Topic != nil && strings.TrimSpace(*patch.Topic) == "" {
		return ErrEmptyTopic
	}
	if patch.Tags != nil && len(*patch.Tags) == 0 {
		return ErrEmptyTags
	}
	if patch.Difficulty != nil && (*patch.Difficulty < 1 || *patch.Difficulty > 5) {
		return ErrInvalidDifficulty
	}
	return nil
}

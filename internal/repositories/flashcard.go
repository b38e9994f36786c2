package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
)

// uniqueViolation is the SQLSTATE code for unique constraint violations.
const uniqueViolation = "23505"

// questionConstraint is the unique constraint on flashcards.question.
const questionConstraint = "flashcards_question_key"

// DuplicateQuestionError is returned by Save when the question uniqueness
// constraint is violated. Classification happens here, at the store
// boundary, so no other code inspects driver errors.
type DuplicateQuestionError struct {
	Question string
}

func (e *DuplicateQuestionError) Error() string {
	return fmt.Sprintf("Questions must be unique: %s", e.Question)
}

// isDuplicateQuestion reports whether err is a violation of the question
// uniqueness constraint.
func isDuplicateQuestion(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == questionConstraint
}

// FlashcardWriteRepository handles flashcard write operations.
type FlashcardWriteRepository struct {
	db *sqlx.DB
}

func NewFlashcardWriteRepository(db *sqlx.DB) *FlashcardWriteRepository {
	return &FlashcardWriteRepository{db: db}
}

// Save inserts a flashcard and returns the row exactly as stored.
func (r *FlashcardWriteRepository) Save(ctx context.Context, card models.FlashCard) (*models.FlashCard, error) {
	const query = `
		INSERT INTO flashcards (id, question, answer, topic, tags, difficulty, created_at)
		VALUES ($1, $2, $3, $4, $5::text[], $6, $7)
		RETURNING id, question, answer, topic, tags, difficulty, created_at, updated_at
	`
	args := []any{card.ID, card.Question, card.Answer, card.Topic, card.Tags, card.Difficulty, card.CreatedAt}

	var stored models.FlashCard
	err := r.db.GetContext(ctx, &stored, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if isDuplicateQuestion(err) {
			return nil, &DuplicateQuestionError{Question: card.Question}
		}
		return nil, err
	}
	return &stored, nil
}

// Update overwrites only the fields present in patch and stamps updated_at.
// Returns nil when no row matched the id.
func (r *FlashcardWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.UpdatedFlashCard) (*models.FlashCard, error) {
	const query = `
		UPDATE flashcards
		SET question   = COALESCE($2, question),
		    answer     = COALESCE($3, answer),
		    topic      = COALESCE($4, topic),
		    tags       = COALESCE($5::text[], tags),
		    difficulty = COALESCE($6, difficulty),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, question, answer, topic, tags, difficulty, created_at, updated_at
	`

	var tags any
	if patch.Tags != nil {
		tags = pq.StringArray(*patch.Tags)
	}
	args := []any{id, patch.Question, patch.Answer, patch.Topic, tags, patch.Difficulty}

	var updated models.FlashCard
	err := r.db.GetContext(ctx, &updated, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if isDuplicateQuestion(err) {
			q := ""
			if patch.Question != nil {
				q = *patch.Question
			}
			return nil, &DuplicateQuestionError{Question: q}
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a flashcard and returns the number of rows affected.
func (r *FlashcardWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM flashcards WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// FlashcardReadRepository handles flashcard read operations.
type FlashcardReadRepository struct {
	db *sqlx.DB
}

func NewFlashcardReadRepository(db *sqlx.DB) *FlashcardReadRepository {
	return &FlashcardReadRepository{db: db}
}

// GetByID returns the flashcard with the given id, or nil when absent.
func (r *FlashcardReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FlashCard, error) {
	const query = `
		SELECT id, question, answer, topic, tags, difficulty, created_at, updated_at
		FROM flashcards
		WHERE id = $1
	`

	var card models.FlashCard
	err := r.db.GetContext(ctx, &card, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// ListAll returns every flashcard, most recently created first.
func (r *FlashcardReadRepository) ListAll(ctx context.Context) ([]models.FlashCard, error) {
	const query = `
		SELECT id, question, answer, topic, tags, difficulty, created_at, updated_at
		FROM flashcards
		ORDER BY created_at DESC
	`

	var cards []models.FlashCard
	err := r.db.SelectContext(ctx, &cards, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(cards),
		"error", err,
	)

	return cards, err
}

// ListByTopic returns flashcards whose topic matches case-insensitively,
// most recently created first.
func (r *FlashcardReadRepository) ListByTopic(ctx context.Context, topic string) ([]models.FlashCard, error) {
	const query = `
		SELECT id, question, answer, topic, tags, difficulty, created_at, updated_at
		FROM flashcards
		WHERE LOWER(topic) = LOWER($1)
		ORDER BY created_at DESC
	`

	var cards []models.FlashCard
	err := r.db.SelectContext(ctx, &cards, query, topic)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{topic},
		"result", len(cards),
		"error", err,
	)

	return cards, err
}

// ListByTag returns flashcards whose tags contain tag as an exact element,
// most recently created first.
func (r *FlashcardReadRepository) ListByTag(ctx context.Context, tag string) ([]models.FlashCard, error) {
	const query = `
		SELECT id, question, answer, topic, tags, difficulty, created_at, updated_at
		FROM flashcards
		WHERE $1 = ANY(tags)
		ORDER BY created_at DESC
	`

	var cards []models.FlashCard
	err := r.db.SelectContext(ctx, &cards, query, tag)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tag},
		"result", len(cards),
		"error", err,
	)

	return cards, err
}

// ListTags returns every distinct tag across all flashcards, sorted ascending.
func (r *FlashcardReadRepository) ListTags(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT UNNEST(tags) AS tag
		FROM flashcards
		ORDER BY tag ASC
	`

	var tags []string
	err := r.db.SelectContext(ctx, &tags, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", tags,
		"error", err,
	)

	return tags, err
}

// ListTopics returns every distinct topic, sorted ascending.
func (r *FlashcardReadRepository) ListTopics(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT topic
		FROM flashcards
		ORDER BY topic ASC
	`

	var topics []string
	err := r.db.SelectContext(ctx, &topics, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", topics,
		"error", err,
	)

	return topics, err
}

// GetRandom returns one uniformly selected flashcard, or nil when the table
// is empty.
func (r *FlashcardReadRepository) GetRandom(ctx context.Context) (*models.FlashCard, error) {
	const query = `
		SELECT id, question, answer, topic, tags, difficulty, created_at, updated_at
		FROM flashcards
		ORDER BY RANDOM()
		LIMIT 1
	`

	var card models.FlashCard
	err := r.db.GetContext(ctx, &card, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

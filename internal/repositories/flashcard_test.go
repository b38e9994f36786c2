package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupFlashcardPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS flashcards (
		id UUID PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		topic TEXT NOT NULL,
		tags TEXT[] NOT NULL,
		difficulty INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ,
		CONSTRAINT flashcards_question_key UNIQUE (question)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newStoredCard(question, topic string, tags []string, createdAt time.Time) models.FlashCard {
	return models.FlashCard{
		ID:         uuid.New(),
		Question:   question,
		Answer:     "answer for " + question,
		Topic:      topic,
		Tags:       pq.StringArray(tags),
		Difficulty: 2,
		CreatedAt:  createdAt,
	}
}

func TestFlashcardWriteRepository_SaveAndGetByID(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	card := newStoredCard("What is a goroutine?", "concurrency", []string{"runtime", "scheduler"}, time.Now().UTC())

	stored, err := writeRepo.Save(ctx, card)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, card.ID, stored.ID)
	assert.Equal(t, card.Question, stored.Question)
	assert.Equal(t, card.Answer, stored.Answer)
	assert.Equal(t, card.Topic, stored.Topic)
	assert.Equal(t, card.Tags, stored.Tags)
	assert.Equal(t, card.Difficulty, stored.Difficulty)
	assert.Nil(t, stored.UpdatedAt)

	fetched, err := readRepo.GetByID(ctx, card.ID)
	assert.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Equal(t, stored.ID, fetched.ID)
	assert.Equal(t, stored.Question, fetched.Question)
	assert.Equal(t, stored.Tags, fetched.Tags)
	assert.Nil(t, fetched.UpdatedAt)
}

func TestFlashcardWriteRepository_SaveDuplicateQuestion(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	repo := NewFlashcardWriteRepository(db)
	ctx := context.Background()

	first := newStoredCard("Only once", "memory", []string{"ownership"}, time.Now().UTC())
	_, err := repo.Save(ctx, first)
	assert.NoError(t, err)

	second := newStoredCard("Only once", "memory", []string{"ownership"}, time.Now().UTC())
	stored, err := repo.Save(ctx, second)
	assert.Nil(t, stored)

	var dup *DuplicateQuestionError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "Only once", dup.Question)
	assert.Equal(t, "Questions must be unique: Only once", dup.Error())
}

func TestFlashcardReadRepository_GetByID_NotFound(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	repo := NewFlashcardReadRepository(db)

	card, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, card)
}

func TestFlashcardReadRepository_ListAll_Ordering(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	oldest := newStoredCard("oldest", "a", []string{"t"}, base)
	middle := newStoredCard("middle", "b", []string{"t"}, base.Add(10*time.Minute))
	newest := newStoredCard("newest", "c", []string{"t"}, base.Add(20*time.Minute))

	for _, card := range []models.FlashCard{oldest, middle, newest} {
		_, err := writeRepo.Save(ctx, card)
		assert.NoError(t, err)
	}

	cards, err := readRepo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, cards, 3)
	assert.Equal(t, "newest", cards[0].Question)
	assert.Equal(t, "middle", cards[1].Question)
	assert.Equal(t, "oldest", cards[2].Question)
}

func TestFlashcardReadRepository_ListByTopic_CaseInsensitive(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, newStoredCard("q1", "Memory", []string{"t"}, time.Now().UTC()))
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, newStoredCard("q2", "concurrency", []string{"t"}, time.Now().UTC()))
	assert.NoError(t, err)

	cards, err := readRepo.ListByTopic(ctx, "memory")
	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, "q1", cards[0].Question)
}

func TestFlashcardReadRepository_ListByTag_ExactElementMatch(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, newStoredCard("q1", "a", []string{"ownership", "borrow"}, time.Now().UTC()))
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, newStoredCard("q2", "a", []string{"ownership-rules"}, time.Now().UTC()))
	assert.NoError(t, err)

	cards, err := readRepo.ListByTag(ctx, "ownership")
	assert.NoError(t, err)
	assert.Len(t, cards, 1, "substring matches must not count")
	assert.Equal(t, "q1", cards[0].Question)

	cards, err = readRepo.ListByTag(ctx, "unknown")
	assert.NoError(t, err)
	assert.Empty(t, cards)
}

func TestFlashcardReadRepository_ListTagsAndTopics(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, newStoredCard("q1", "memory", []string{"beta", "alpha"}, time.Now().UTC()))
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, newStoredCard("q2", "concurrency", []string{"alpha", "gamma"}, time.Now().UTC()))
	assert.NoError(t, err)

	tags, err := readRepo.ListTags(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, tags)

	topics, err := readRepo.ListTopics(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"concurrency", "memory"}, topics)
}

func TestFlashcardReadRepository_GetRandom(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	t.Run("EmptyStore", func(t *testing.T) {
		card, err := readRepo.GetRandom(ctx)
		assert.NoError(t, err)
		assert.Nil(t, card)
	})

	t.Run("EverySeededCardIsReachable", func(t *testing.T) {
		questions := []string{"r1", "r2", "r3"}
		for _, q := range questions {
			_, err := writeRepo.Save(ctx, newStoredCard(q, "random", []string{"t"}, time.Now().UTC()))
			assert.NoError(t, err)
		}

		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			card, err := readRepo.GetRandom(ctx)
			assert.NoError(t, err)
			assert.NotNil(t, card)
			seen[card.Question] = true
		}

		for _, q := range questions {
			assert.True(t, seen[q], "expected %s to be sampled", q)
		}
	})
}

func TestFlashcardWriteRepository_Update_Partial(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	ctx := context.Background()

	card := newStoredCard("before", "memory", []string{"ownership"}, time.Now().UTC())
	_, err := writeRepo.Save(ctx, card)
	assert.NoError(t, err)

	before := time.Now().UTC().Add(-time.Second)
	newQuestion := "after"
	updated, err := writeRepo.Update(ctx, card.ID, models.UpdatedFlashCard{Question: &newQuestion})
	assert.NoError(t, err)
	assert.NotNil(t, updated)

	assert.Equal(t, "after", updated.Question)
	assert.Equal(t, card.Answer, updated.Answer)
	assert.Equal(t, card.Topic, updated.Topic)
	assert.Equal(t, card.Tags, updated.Tags)
	assert.Equal(t, card.Difficulty, updated.Difficulty)
	assert.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestFlashcardWriteRepository_Update_AllFields(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	ctx := context.Background()

	card := newStoredCard("original", "memory", []string{"old"}, time.Now().UTC())
	_, err := writeRepo.Save(ctx, card)
	assert.NoError(t, err)

	question := "rewritten"
	answer := "new answer"
	topic := "concurrency"
	tags := []string{"fresh", "tags"}
	difficulty := 5

	updated, err := writeRepo.Update(ctx, card.ID, models.UpdatedFlashCard{
		Question:   &question,
		Answer:     &answer,
		Topic:      &topic,
		Tags:       &tags,
		Difficulty: &difficulty,
	})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, question, updated.Question)
	assert.Equal(t, answer, updated.Answer)
	assert.Equal(t, topic, updated.Topic)
	assert.Equal(t, pq.StringArray(tags), updated.Tags)
	assert.Equal(t, difficulty, updated.Difficulty)
	assert.Equal(t, card.ID, updated.ID)
}

func TestFlashcardWriteRepository_Update_NotFound(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	repo := NewFlashcardWriteRepository(db)

	question := "anything"
	updated, err := repo.Update(context.Background(), uuid.New(), models.UpdatedFlashCard{Question: &question})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestFlashcardWriteRepository_Delete(t *testing.T) {
	db, teardown := setupFlashcardPostgresContainer(t)
	defer teardown()

	writeRepo := NewFlashcardWriteRepository(db)
	readRepo := NewFlashcardReadRepository(db)
	ctx := context.Background()

	card := newStoredCard("to delete", "memory", []string{"t"}, time.Now().UTC())
	_, err := writeRepo.Save(ctx, card)
	assert.NoError(t, err)

	rowsAffected, err := writeRepo.Delete(ctx, card.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	fetched, err := readRepo.GetByID(ctx, card.ID)
	assert.NoError(t, err)
	assert.Nil(t, fetched)

	rowsAffected, err = writeRepo.Delete(ctx, card.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rowsAffected)
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-service/internal/logger"
	"github.com/sbilibin2017/flashcards-service/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrNoFlashcards      = errors.New("No flashcards available")
)

// Card event types published to Kafka.
const (
	EventCardCreated = "flashcard.created"
	EventCardUpdated = "flashcard.updated"
	EventCardDeleted = "flashcard.deleted"
)

// CardEvent describes a change to a flashcard.
type CardEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	CardID     uuid.UUID `json:"card_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FlashcardReader defines read operations for flashcards.
type FlashcardReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.FlashCard, error)
	ListAll(ctx context.Context) ([]models.FlashCard, error)
	ListByTopic(ctx context.Context, topic string) ([]models.FlashCard, error)
	ListByTag(ctx context.Context, tag string) ([]models.FlashCard, error)
	ListTags(ctx context.Context) ([]string, error)
	ListTopics(ctx context.Context) ([]string, error)
	GetRandom(ctx context.Context) (*models.FlashCard, error)
}

// FlashcardWriter defines write operations for flashcards.
type FlashcardWriter interface {
	Save(ctx context.Context, card models.FlashCard) (*models.FlashCard, error)
	Update(ctx context.Context, id uuid.UUID, patch models.UpdatedFlashCard) (*models.FlashCard, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// FlashcardService handles flashcard operations and card-event publishing.
type FlashcardService struct {
	reader      FlashcardReader
	writer      FlashcardWriter
	kafkaWriter KafkaWriter
}

// NewFlashcardService creates a new FlashcardService. kafkaWriter may be nil,
// in which case event publishing is disabled.
func NewFlashcardService(reader FlashcardReader, writer FlashcardWriter, kafkaWriter KafkaWriter) *FlashcardService {
	return &FlashcardService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishCardEvent publishes a card change event to Kafka.
func (svc *FlashcardService) publishCardEvent(ctx context.Context, eventType string, cardID uuid.UUID) {
	if svc.kafkaWriter == nil {
		return
	}

	event := CardEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		CardID:     cardID,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal card event", "card_id", cardID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(cardID.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish card event", "card_id", cardID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("card event published", "card_id", cardID, "type", eventType)
}

// Create validates a creation input, stores the resulting flashcard and
// returns the row as persisted.
func (svc *FlashcardService) Create(ctx context.Context, input models.NewFlashCard) (*models.FlashCard, error) {
	card, err := models.BuildFlashCard(input)
	if err != nil {
		logger.Log.Errorw("flashcard validation failed", "err", err)
		return nil, err
	}

	created, err := svc.writer.Save(ctx, *card)
	if err != nil {
		logger.Log.Errorw("failed to save flashcard", "err", err)
		return nil, err
	}

	svc.publishCardEvent(ctx, EventCardCreated, created.ID)
	return created, nil
}

// Get returns the flashcard with the given id.
func (svc *FlashcardService) Get(ctx context.Context, id uuid.UUID) (*models.FlashCard, error) {
	card, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get flashcard", "id", id, "err", err)
		return nil, err
	}
	if card == nil {
		return nil, ErrFlashcardNotFound
	}
	return card, nil
}

// List returns flashcards filtered by topic or tag. When both are supplied
// the topic filter wins; when neither is, every flashcard is returned.
func (svc *FlashcardService) List(ctx context.Context, topic, tag string) ([]models.FlashCard, error) {
	var (
		cards []models.FlashCard
		err   error
	)
	switch {
	case topic != "":
		cards, err = svc.reader.ListByTopic(ctx, topic)
	case tag != "":
		cards, err = svc.reader.ListByTag(ctx, tag)
	default:
		cards, err = svc.reader.ListAll(ctx)
	}
	if err != nil {
		logger.Log.Errorw("failed to list flashcards", "topic", topic, "tag", tag, "err", err)
		return nil, err
	}
	return cards, nil
}

// Tags returns every distinct tag, sorted ascending.
func (svc *FlashcardService) Tags(ctx context.Context) ([]string, error) {
	tags, err := svc.reader.ListTags(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "err", err)
		return nil, err
	}
	return tags, nil
}

// Topics returns every distinct topic, sorted ascending.
func (svc *FlashcardService) Topics(ctx context.Context) ([]string, error) {
	topics, err := svc.reader.ListTopics(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list topics", "err", err)
		return nil, err
	}
	return topics, nil
}

// Random returns one uniformly selected flashcard, or ErrNoFlashcards when
// the store is empty.
func (svc *FlashcardService) Random(ctx context.Context) (*models.FlashCard, error) {
	card, err := svc.reader.GetRandom(ctx)
	if err != nil {
		logger.Log.Errorw("failed to pick random flashcard", "err", err)
		return nil, err
	}
	if card == nil {
		return nil, ErrNoFlashcards
	}
	return card, nil
}

// Update applies the fields present in patch to the stored flashcard. The
// supplied fields are validated with the same rules as creation, and string
// fields are trimmed before storage.
func (svc *FlashcardService) Update(ctx context.Context, id uuid.UUID, patch models.UpdatedFlashCard) (*models.FlashCard, error) {
	if err := models.ValidatePatch(patch); err != nil {
		logger.Log.Errorw("flashcard patch validation failed", "id", id, "err", err)
		return nil, err
	}

	trimField(&patch.Question)
	trimField(&patch.Answer)
	trimField(&patch.Topic)

	updated, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update flashcard", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrFlashcardNotFound
	}

	svc.publishCardEvent(ctx, EventCardUpdated, updated.ID)
	return updated, nil
}

// Delete removes the flashcard with the given id.
func (svc *FlashcardService) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete flashcard", "id", id, "err", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrFlashcardNotFound
	}

	svc.publishCardEvent(ctx, EventCardDeleted, id)
	return nil
}

// trimField trims a present optional string field in place.
func trimField(field **string) {
	if *field != nil {
		trimmed := strings.TrimSpace(**field)
		*field = &trimmed
	}
}

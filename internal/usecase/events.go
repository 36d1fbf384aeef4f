package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// newOutboxEvent builds an outbox event for a typed payload. Payloads are
// flattened to a map so the outbox row stores plain JSON.
func newOutboxEvent(aggregateType, aggregateID, eventType string, payload any, createdAt time.Time) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Payload:       toPayloadMap(payload),
		CreatedAt:     createdAt,
	}
}

func toPayloadMap(v any) map[string]any {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	return m
}

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dinheirorapido/loanledger/internal/adapter/repository/postgres"
	"github.com/dinheirorapido/loanledger/internal/domain"
	"github.com/dinheirorapido/loanledger/internal/infrastructure/changefeed"
	"github.com/dinheirorapido/loanledger/internal/usecase"
	"github.com/dinheirorapido/loanledger/tests/testutil"
)

func TestOutboxEventCreation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	loanRepo := postgres.NewLoanRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	retrier := postgres.NewRetrier(zerolog.Nop())
	idGen := postgres.NewULIDGenerator()

	loanUC := usecase.NewLoanUseCase(txManager, loanRepo, paymentRepo, receiptRepo, clientRepo, outboxRepo, retrier, idGen)

	client := testDB.CreateTestClient(ctx, "Maria Souza")

	loan, err := loanUC.CreateLoan(ctx, usecase.CreateLoanInput{
		ClientID:     client.ID,
		Amount:       decimal.NewFromInt(1000),
		InterestRate: decimal.NewFromInt(20),
		PaymentType:  domain.PaymentTypeInstallments,
		Installments: 4,
	})
	if err != nil {
		t.Fatalf("failed to create loan: %v", err)
	}

	events, err := outboxRepo.GetUnpublished(ctx, 10)
	if err != nil {
		t.Fatalf("failed to get unpublished events: %v", err)
	}

	var loanEvent *domain.OutboxEvent
	for _, event := range events {
		if event.EventType == domain.EventTypeLoanCreated && event.AggregateID == loan.ID {
			loanEvent = event
			break
		}
	}

	if loanEvent == nil {
		t.Fatal("loan created event not found in outbox")
	}

	if loanEvent.AggregateType != domain.AggregateTypeLoan {
		t.Errorf("expected aggregate type %s, got %s", domain.AggregateTypeLoan, loanEvent.AggregateType)
	}

	if loanEvent.Published {
		t.Error("event should not be published yet")
	}

	if loanEvent.Payload == nil {
		t.Fatal("event payload is nil")
	}

	if loanEvent.Payload["loan_id"] != loan.ID {
		t.Errorf("payload loan_id mismatch: expected %s, got %v", loan.ID, loanEvent.Payload["loan_id"])
	}

	if loanEvent.Payload["client_id"] != client.ID {
		t.Errorf("payload client_id mismatch")
	}
}

func TestChangefeedDrainsOutbox(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	loanRepo := postgres.NewLoanRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	retrier := postgres.NewRetrier(zerolog.Nop())
	idGen := postgres.NewULIDGenerator()

	loanUC := usecase.NewLoanUseCase(txManager, loanRepo, paymentRepo, receiptRepo, clientRepo, outboxRepo, retrier, idGen)

	client := testDB.CreateTestClient(ctx, "Joao Lima")

	_, err := loanUC.CreateLoan(ctx, usecase.CreateLoanInput{
		ClientID:     client.ID,
		Amount:       decimal.NewFromInt(500),
		InterestRate: decimal.NewFromInt(10),
		PaymentType:  domain.PaymentTypeInstallments,
		Installments: 2,
	})
	if err != nil {
		t.Fatalf("failed to create loan: %v", err)
	}

	capture := &capturePublisher{}
	feed := changefeed.NewFeed(changefeed.Config{
		OutboxRepo: outboxRepo,
		Publisher:  capture,
		Logger:     zerolog.Nop(),
		BatchSize:  10,
	})

	feedCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	go feed.Start(feedCtx)

	time.Sleep(100 * time.Millisecond)

	published := capture.Published()
	if len(published) == 0 {
		t.Fatal("no events were published")
	}

	unpublished, err := outboxRepo.GetUnpublished(ctx, 10)
	if err != nil {
		t.Fatalf("failed to get unpublished events: %v", err)
	}

	if len(unpublished) > 0 {
		t.Errorf("expected 0 unpublished events after draining, got %d", len(unpublished))
	}
}

type capturePublisher struct {
	mu        sync.Mutex
	published []*domain.OutboxEvent
}

func (p *capturePublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, event)
	return nil
}

func (p *capturePublisher) Published() []*domain.OutboxEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*domain.OutboxEvent{}, p.published...)
}

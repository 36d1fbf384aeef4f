package usecase

import (
	"context"
	"time"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// ClientUseCase handles client business logic.
type ClientUseCase struct {
	txManager   TransactionManager
	clientRepo  ClientRepository
	loanRepo    LoanRepository
	paymentRepo PaymentRepository
	receiptRepo ReceiptRepository
	outboxRepo  OutboxRepository
	retrier     Retrier
	idGen       IDGenerator
	now         func() time.Time
}

// NewClientUseCase creates a new ClientUseCase.
func NewClientUseCase(
	txManager TransactionManager,
	clientRepo ClientRepository,
	loanRepo LoanRepository,
	paymentRepo PaymentRepository,
	receiptRepo ReceiptRepository,
	outboxRepo OutboxRepository,
	retrier Retrier,
	idGen IDGenerator,
) *ClientUseCase {
	return &ClientUseCase{
		txManager:   txManager,
		clientRepo:  clientRepo,
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		outboxRepo:  outboxRepo,
		retrier:     retrier,
		idGen:       idGen,
		now:         time.Now,
	}
}

// CreateClientInput represents input for registering a client.
type CreateClientInput struct {
	Name    string
	Email   string
	Phone   string
	CPF     string
	Address string
	City    string
	State   string
	ZipCode string
	Notes   string
}

// CreateClient registers a new client.
func (uc *ClientUseCase) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CPF:       input.CPF,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Notes:     input.Notes,
		CreatedAt: uc.now().UTC(),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID.
func (uc *ClientUseCase) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

// UpdateClientInput represents input for updating a client profile. Nil
// fields are left unchanged.
type UpdateClientInput struct {
	ID      string
	Name    *string
	Email   *string
	Phone   *string
	CPF     *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
	Notes   *string
}

// UpdateClient updates a client profile.
func (uc *ClientUseCase) UpdateClient(ctx context.Context, input UpdateClientInput) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.CPF != nil {
		client.CPF = *input.CPF
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.City != nil {
		client.City = *input.City
	}
	if input.State != nil {
		client.State = *input.State
	}
	if input.ZipCode != nil {
		client.ZipCode = *input.ZipCode
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// ListClientsInput represents input for listing clients.
type ListClientsInput struct {
	Query  string
	Limit  int
	Offset int
}

// ListClients lists clients with pagination, optionally filtered by a
// name/CPF search query.
func (uc *ClientUseCase) ListClients(ctx context.Context, input ListClientsInput) ([]*domain.Client, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	if input.Query != "" {
		return uc.clientRepo.Search(ctx, input.Query, limit, offset)
	}

	return uc.clientRepo.List(ctx, limit, offset)
}

// DeleteClient removes a client and everything hanging off it: receipts,
// payments, and loans are deleted first, all inside one transaction, so a
// half-deleted client can never be observed. The whole transaction is retried
// on serialization and deadlock failures.
func (uc *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.receiptRepo.DeleteByClientTx(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.paymentRepo.DeleteByClientTx(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.loanRepo.DeleteByClientTx(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.clientRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}

		event := newOutboxEvent(domain.AggregateTypeClient, id, domain.EventTypeClientDeleted, map[string]any{
			"client_id": id,
			"name":      client.Name,
		}, uc.now().UTC())

		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

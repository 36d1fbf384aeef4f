package usecase

import (
	"context"
	"time"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

// PixKeyUseCase handles pix key bookkeeping.
type PixKeyUseCase struct {
	pixKeyRepo PixKeyRepository
	idGen      IDGenerator
	now        func() time.Time
}

// NewPixKeyUseCase creates a new PixKeyUseCase.
func NewPixKeyUseCase(pixKeyRepo PixKeyRepository, idGen IDGenerator) *PixKeyUseCase {
	return &PixKeyUseCase{
		pixKeyRepo: pixKeyRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreatePixKeyInput represents input for registering a pix key.
type CreatePixKeyInput struct {
	Name     string
	KeyType  domain.PixKeyType
	KeyValue string
	Owner    string
}

// CreatePixKey registers a pix key.
func (uc *PixKeyUseCase) CreatePixKey(ctx context.Context, input CreatePixKeyInput) (*domain.PixKey, error) {
	now := uc.now().UTC()

	key := &domain.PixKey{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		KeyType:   input.KeyType,
		KeyValue:  input.KeyValue,
		Owner:     input.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := key.Validate(); err != nil {
		return nil, err
	}

	if err := uc.pixKeyRepo.Create(ctx, key); err != nil {
		return nil, err
	}

	return key, nil
}

// GetPixKey retrieves a pix key by ID.
func (uc *PixKeyUseCase) GetPixKey(ctx context.Context, id string) (*domain.PixKey, error) {
	return uc.pixKeyRepo.GetByID(ctx, id)
}

// UpdatePixKeyInput represents input for updating a pix key. Nil fields are
// left unchanged.
type UpdatePixKeyInput struct {
	ID       string
	Name     *string
	KeyType  *domain.PixKeyType
	KeyValue *string
	Owner    *string
}

// UpdatePixKey updates a pix key.
func (uc *PixKeyUseCase) UpdatePixKey(ctx context.Context, input UpdatePixKeyInput) (*domain.PixKey, error) {
	key, err := uc.pixKeyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		key.Name = *input.Name
	}
	if input.KeyType != nil {
		key.KeyType = *input.KeyType
	}
	if input.KeyValue != nil {
		key.KeyValue = *input.KeyValue
	}
	if input.Owner != nil {
		key.Owner = *input.Owner
	}

	if err := key.Validate(); err != nil {
		return nil, err
	}

	key.UpdatedAt = uc.now().UTC()

	if err := uc.pixKeyRepo.Update(ctx, key); err != nil {
		return nil, err
	}

	return key, nil
}

// DeletePixKey removes a pix key.
func (uc *PixKeyUseCase) DeletePixKey(ctx context.Context, id string) error {
	return uc.pixKeyRepo.Delete(ctx, id)
}

// ListPixKeys lists registered pix keys.
func (uc *PixKeyUseCase) ListPixKeys(ctx context.Context, limit, offset int) ([]*domain.PixKey, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.pixKeyRepo.List(ctx, limit, offset)
}

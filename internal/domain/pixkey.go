package domain

import "time"

// PixKeyType is the kind of Pix key registered for receiving payments.
type PixKeyType string

const (
	PixKeyTypeCPF    PixKeyType = "cpf"
	PixKeyTypeCNPJ   PixKeyType = "cnpj"
	PixKeyTypeEmail  PixKeyType = "email"
	PixKeyTypePhone  PixKeyType = "phone"
	PixKeyTypeRandom PixKeyType = "random"
)

// IsValid checks if the key type is known.
func (t PixKeyType) IsValid() bool {
	switch t {
	case PixKeyTypeCPF, PixKeyTypeCNPJ, PixKeyTypeEmail, PixKeyTypePhone, PixKeyTypeRandom:
		return true
	}
	return false
}

// PixKey is a registered Pix key shown to operators alongside receipts.
type PixKey struct {
	ID        string
	Name      string
	KeyType   PixKeyType
	KeyValue  string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates a Pix key entry.
func (k *PixKey) Validate() error {
	if !k.KeyType.IsValid() {
		return ErrInvalidPixKeyType
	}

	if k.KeyValue == "" {
		return ErrInvalidPixKey
	}

	return nil
}

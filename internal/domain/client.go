package domain

import "time"

// Client represents a borrower. Identity is immutable; profile fields may be
// updated. Deleting a client cascades to its loans, payments, and receipts.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CPF       string
	Address   string
	City      string
	State     string
	ZipCode   string
	Notes     string
	CreatedAt time.Time
}

// Validate validates a client profile.
func (c *Client) Validate() error {
	if err := ValidatePersonName(c.Name); err != nil {
		return err
	}

	if c.Email != "" {
		if err := ValidateEmail(c.Email); err != nil {
			return err
		}
	}

	return nil
}

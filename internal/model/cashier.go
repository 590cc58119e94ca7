package model

import (
	"time"

	"github.com/google/uuid"
)

// Cashier is a staff account allowed to run checkouts. Username is
// unique (case-sensitive) across the collection.
type Cashier struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username" validate:"required"`
	Password  string    `json:"password" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// CashierResponse is used for API responses (without the credential).
type CashierResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts Cashier to CashierResponse.
func (c *Cashier) ToResponse() CashierResponse {
	return CashierResponse{
		ID:        c.ID,
		Username:  c.Username,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

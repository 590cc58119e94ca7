package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Session describes one authenticated person. It is issued at login,
// carried in the JWT and held by the caller; nothing durable references
// it.
type Session struct {
	Role      Role      `json:"role"`
	Username  string    `json:"username"`
	CashierID uuid.UUID `json:"cashier_id,omitempty"`
	Name      string    `json:"name,omitempty"`
	LoggedAt  time.Time `json:"logged_at"`
}

// DisplayName is the name shown on orders and dashboards.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Username
}

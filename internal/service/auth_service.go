package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"swiftpos/internal/model"
	"swiftpos/internal/repository"
	"swiftpos/pkg/jwt"
	"swiftpos/pkg/password"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials deliberately does not say whether the
	// username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingFields      = errors.New("username, password and name are required")
	ErrCashierNotFound    = errors.New("cashier not found")
)

// AdminCredentials is the single fixed admin identity. It comes from
// configuration, not from the cashier collection.
type AdminCredentials struct {
	Username string
	Password string
}

type AuthService interface {
	AdminLogin(username, pass string) (*LoginResponse, error)
	CashierLogin(username, pass string) (*LoginResponse, error)
	Register(username, pass, name string) (*model.CashierResponse, error)
	ListCashiers() ([]model.CashierResponse, error)
	ResetPassword(id uuid.UUID, newPassword string) (*model.CashierResponse, error)
	RemoveCashier(id uuid.UUID) error
}

// LoginResponse pairs the session descriptor with the token the caller
// holds on to. The service never persists session state itself.
type LoginResponse struct {
	Token   string        `json:"token"`
	Session model.Session `json:"session"`
}

type authService struct {
	cashiers repository.CashierRepository
	scheme   password.Scheme
	admin    AdminCredentials
	hub      Broadcaster
}

func NewAuthService(cashiers repository.CashierRepository, scheme password.Scheme, admin AdminCredentials, hub Broadcaster) AuthService {
	return &authService{
		cashiers: cashiers,
		scheme:   scheme,
		admin:    admin,
		hub:      hub,
	}
}

func (s *authService) AdminLogin(username, pass string) (*LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.admin.Password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	session := model.Session{
		Role:     model.RoleAdmin,
		Username: s.admin.Username,
		LoggedAt: time.Now(),
	}
	return s.issue(session)
}

func (s *authService) CashierLogin(username, pass string) (*LoginResponse, error) {
	cashier, err := s.cashiers.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if cashier == nil || !s.scheme.Compare(cashier.Password, pass) {
		return nil, ErrInvalidCredentials
	}

	session := model.Session{
		Role:      model.RoleCashier,
		Username:  cashier.Username,
		CashierID: cashier.ID,
		Name:      cashier.Name,
		LoggedAt:  time.Now(),
	}
	return s.issue(session)
}

func (s *authService) issue(session model.Session) (*LoginResponse, error) {
	cashierID := ""
	if session.CashierID != uuid.Nil {
		cashierID = session.CashierID.String()
	}
	token, err := jwt.GenerateToken(string(session.Role), session.Username, cashierID, session.Name, session.LoggedAt)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}
	return &LoginResponse{Token: token, Session: session}, nil
}

// Register creates a cashier account. Both self-registration and the
// admin's add-cashier form go through here, so username uniqueness is
// enforced in one place.
func (s *authService) Register(username, pass, name string) (*model.CashierResponse, error) {
	if username == "" || pass == "" || name == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.cashiers.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := s.scheme.Hash(pass)
	if err != nil {
		return nil, err
	}

	cashier := &model.Cashier{
		ID:        uuid.New(),
		Username:  username,
		Password:  hashed,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.cashiers.Create(cashier); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(map[string]interface{}{
			"type":   "staff_update",
			"action": "cashier_registered",
			"cashier": map[string]interface{}{
				"id":       cashier.ID,
				"username": cashier.Username,
				"name":     cashier.Name,
			},
		})
	}

	resp := cashier.ToResponse()
	return &resp, nil
}

func (s *authService) ListCashiers() ([]model.CashierResponse, error) {
	cashiers, err := s.cashiers.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]model.CashierResponse, 0, len(cashiers))
	for i := range cashiers {
		out = append(out, cashiers[i].ToResponse())
	}
	return out, nil
}

func (s *authService) ResetPassword(id uuid.UUID, newPassword string) (*model.CashierResponse, error) {
	if newPassword == "" {
		return nil, ErrMissingFields
	}
	cashier, err := s.cashiers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, ErrCashierNotFound
	}

	hashed, err := s.scheme.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	cashier.Password = hashed
	if err := s.cashiers.Update(cashier); err != nil {
		return nil, err
	}

	resp := cashier.ToResponse()
	return &resp, nil
}

func (s *authService) RemoveCashier(id uuid.UUID) error {
	if err := s.cashiers.Delete(id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrCashierNotFound
		}
		return err
	}
	if s.hub != nil {
		s.hub.Publish(map[string]interface{}{
			"type":       "staff_update",
			"action":     "cashier_removed",
			"cashier_id": id,
		})
	}
	return nil
}

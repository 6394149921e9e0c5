package auth

import (
	"context"
	"errors"

	"github.com/example/storefront/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a password with its hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Verifier checks a credential pair and resolves it to an account. Handlers
// only depend on this interface, so the demo verifier and a real store-backed
// one are interchangeable without touching call sites.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (*user.User, error)
}

// UserLookup is the slice of the user store the verifier needs.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*user.User, bool)
}

// StoreVerifier verifies credentials against persisted accounts with bcrypt.
type StoreVerifier struct {
	users UserLookup
}

func NewStoreVerifier(users UserLookup) *StoreVerifier {
	return &StoreVerifier{users: users}
}

func (v *StoreVerifier) Verify(ctx context.Context, email, password string) (*user.User, error) {
	u, ok := v.users.GetUserByEmail(ctx, email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// StaticUser is a fixed demo account.
type StaticUser struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// StaticVerifier accepts a fixed set of accounts with plaintext passwords.
// Demo use only.
type StaticVerifier struct {
	users []StaticUser
}

func NewStaticVerifier(users []StaticUser) *StaticVerifier {
	return &StaticVerifier{users: users}
}

// DefaultStaticUsers returns the demo accounts the storefront has always
// shipped with.
func DefaultStaticUsers() []StaticUser {
	return []StaticUser{
		{ID: "1", Name: "Test User", Email: "user@example.com", Password: "password123", Role: user.RoleCustomer},
		{ID: "2", Name: "Admin User", Email: "admin@example.com", Password: "admin123", Role: user.RoleAdmin},
	}
}

func (v *StaticVerifier) Verify(ctx context.Context, email, password string) (*user.User, error) {
	for _, su := range v.users {
		if su.Email == email && su.Password == password {
			return &user.User{
				ID:    su.ID,
				Email: su.Email,
				Name:  su.Name,
				Role:  su.Role,
			}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

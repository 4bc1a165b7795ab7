package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smerla/milkbook/internal/models"
)

type memoryUserStore struct {
	users map[string]*models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*models.User)}
}

func (s *memoryUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func (s *memoryUserStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStore())
	ctx := context.Background()

	user, err := a.Register(ctx, "owner@dairy.local", "Owner", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.PasswordHash == "correct-horse-battery" {
		t.Error("password stored in plain text")
	}

	got, err := a.Authenticate(ctx, "owner@dairy.local", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Authenticate() user = %s, want %s", got.ID, user.ID)
	}

	if _, err := a.Authenticate(ctx, "owner@dairy.local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@dairy.local", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejections(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUserStore())
	ctx := context.Background()

	if _, err := a.Register(ctx, "owner@dairy.local", "Owner", "short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password error = %v, want ErrWeakPassword", err)
	}

	if _, err := a.Register(ctx, "owner@dairy.local", "Owner", "long-enough-pass"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := a.Register(ctx, "owner@dairy.local", "Again", "long-enough-pass"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email error = %v, want ErrEmailExists", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", Email: "owner@dairy.local"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "owner@dairy.local" {
		t.Errorf("claims = %+v, want u1 / owner@dairy.local", claims)
	}
}

func TestJWTValidateRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", Email: "owner@dairy.local"}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := m.Generate(user)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		other := NewJWTManager("different-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})
}

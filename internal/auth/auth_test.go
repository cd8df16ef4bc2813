package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anveshm/budgetwise/internal/models"
)

type fakeUserStorage struct {
	users map[string]*models.User
}

func (f *fakeUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	hasher := NewBcryptHasher()
	hash, err := hasher.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}

	storage := &fakeUserStorage{users: map[string]*models.User{
		"alice@example.com": {ID: 1, Email: "alice@example.com", PasswordHash: hash},
	}}
	authenticator := NewPasswordAuthenticator(storage)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := authenticator.Authenticate(ctx, "alice@example.com", "correct horse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("user ID = %d, want 1", user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "alice@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "bob@example.com", "anything")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: 42, Email: "alice@example.com"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %s, want alice@example.com", claims.Email)
	}
}

func TestJWTManager_RejectsExpiredAndForeignTokens(t *testing.T) {
	user := &models.User{ID: 1, Email: "alice@example.com"}

	expired := NewJWTManager("test-secret", -time.Minute)
	token, err := expired.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := expired.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: err = %v, want ErrInvalidToken", err)
	}

	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)
	token, err = issuer.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token: err = %v, want ErrInvalidToken", err)
	}
}

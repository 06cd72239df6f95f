// Package session owns the signed-in teacher record. There is no real
// authentication: any non-empty email and password sign in, and the
// record is kept in the local store so it survives restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/asmanlearning/asman/internal/logger"
	"github.com/asmanlearning/asman/internal/store"
)

// StoreKey is the key the user record is persisted under.
const StoreKey = "asman_user"

var (
	// ErrInvalidCredentials is returned when email or password is blank.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidEmail is returned when the email is not a valid address.
	ErrInvalidEmail = errors.New("invalid email address")
)

// User is the persisted session record.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// KV is the slice of the local store the manager needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Manager holds the current user. It is safe for concurrent use.
type Manager struct {
	kv       KV
	log      *logger.Logger
	validate *validator.Validate

	mu      sync.RWMutex
	current *User
}

// NewManager creates a Manager backed by kv. Call Load to pick up a
// previously persisted record.
func NewManager(kv KV, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		kv:       kv,
		log:      log,
		validate: validator.New(),
	}
}

// Load reads the persisted record, if any, and makes it current.
// A corrupt record is discarded.
func (m *Manager) Load(ctx context.Context) (*User, error) {
	raw, err := m.kv.Get(ctx, StoreKey)
	if errors.Is(err, store.ErrNotFound) {
		m.set(nil)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
		m.log.Warn("discarding corrupt session record", "error", err)
		if err := m.kv.Delete(ctx, StoreKey); err != nil {
			return nil, fmt.Errorf("discard session: %w", err)
		}
		m.set(nil)
		return nil, nil
	}

	m.set(&u)
	return m.Current(), nil
}

// Login signs in with email and password. The display name is derived
// from the email's local part.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if err := m.check(email, password); err != nil {
		return nil, err
	}
	u := &User{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: DisplayNameFromEmail(email),
	}
	return m.persist(ctx, u)
}

// Signup creates a new account. A blank name falls back to the one
// derived from the email.
func (m *Manager) Signup(ctx context.Context, email, password, name string) (*User, error) {
	email = strings.TrimSpace(email)
	if err := m.check(email, password); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DisplayNameFromEmail(email)
	}
	u := &User{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: name,
	}
	return m.persist(ctx, u)
}

// Logout clears the current user and the persisted record.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.kv.Delete(ctx, StoreKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.set(nil)
	m.log.Info("signed out")
	return nil
}

// Current returns a copy of the signed-in user, or nil.
func (m *Manager) Current() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

func (m *Manager) check(email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}
	if err := m.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func (m *Manager) persist(ctx context.Context, u *User) (*User, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := m.kv.Set(ctx, StoreKey, raw); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	m.set(u)
	m.log.Info("signed in", "user_id", u.ID, "email", u.Email)
	return m.Current(), nil
}

func (m *Manager) set(u *User) {
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
}

// DisplayNameFromEmail turns the local part of an email into a name:
// non-letters become spaces and each word is capitalized.
// "ravi.kumar42@school.in" -> "Ravi Kumar".
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return ' '
	}, local)

	words := strings.Fields(letters)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

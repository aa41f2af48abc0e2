// Package session owns the client's authenticated session: the user
// identity and bearer credential, persisted across runs under fixed keys.
// The store is the only component that mutates the session; everything
// else reads it through IsAuthenticated, User, and Credential.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/blognest/blognest-cli/internal/client/models"
)

// persisted is the on-disk shape of the session file.
type persisted struct {
	User  *models.User `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
}

// Store holds the current session. Create with NewStore, then call
// Restore once at startup. Login and Logout are the only mutators.
type Store struct {
	path  string
	user  *models.User
	token string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Restore reads the persisted identity and credential. A missing file
// starts an unauthenticated session; malformed data clears the persisted
// state and starts unauthenticated. Restore never fails past this point.
func (s *Store) Restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		_ = os.Remove(s.path)
		s.user = nil
		s.token = ""
		return
	}

	s.user = p.User
	s.token = p.Token
}

// Login records the given identity and credential. Either may be zero;
// an omitted field keeps its previous value. The result is persisted.
func (s *Store) Login(user *models.User, token string) error {
	if user != nil {
		s.user = user
	}
	if token != "" {
		s.token = token
	}
	return s.persist()
}

// Logout clears the in-memory and persisted session unconditionally.
// Calling it twice leaves the same cleared state as calling it once.
func (s *Store) Logout() {
	s.user = nil
	s.token = ""
	_ = os.Remove(s.path)
}

// IsAuthenticated is true iff a credential is set.
func (s *Store) IsAuthenticated() bool {
	return s.token != ""
}

func (s *Store) User() *models.User {
	return s.user
}

// Credential returns the bearer token, empty when unauthenticated.
// Satisfies api.CredentialSource.
func (s *Store) Credential() string {
	return s.token
}

// Email returns the best identity string available: the stored user's
// email, or the email claim decoded from the credential.
func (s *Store) Email() string {
	if s.user != nil && s.user.Email != "" {
		return s.user.Email
	}
	email, _, _ := decodeClaims(s.token)
	return email
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(persisted{User: s.user, Token: s.token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

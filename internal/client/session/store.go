// Package session persists the signed-in user's Session in a key/value
// storage. It is the only writer of the session keys.
package session

import (
	"context"

	"github.com/dmitrijs2005/shopauth/internal/client/models"
	"github.com/dmitrijs2005/shopauth/internal/client/storage"
	"github.com/dmitrijs2005/shopauth/internal/logging"
)

// Storage keys. Flat names without namespace or version.
const (
	KeyToken     = "token"
	KeyUserID    = "user_id"
	KeyEmail     = "email"
	KeyFirstName = "first_name"
	KeyLastName  = "last_name"
)

var allKeys = []string{KeyToken, KeyUserID, KeyEmail, KeyFirstName, KeyLastName}

// Store reads and writes the Session through an injected storage.Storage.
type Store struct {
	storage storage.Storage
	logger  logging.Logger
}

func NewStore(s storage.Storage, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{storage: s, logger: logger.With("component", "session")}
}

// Save replaces the whole session in one batch. Empty fields are written as
// empty values, so nothing from a previous session survives.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	return s.storage.SetMany(ctx, map[string]string{
		KeyToken:     sess.Token,
		KeyUserID:    sess.UserID,
		KeyEmail:     sess.Email,
		KeyFirstName: sess.FirstName,
		KeyLastName:  sess.LastName,
	})
}

// SaveProfile writes the user fields of sess, empty values included, and
// leaves the stored token as it is. Profile responses carry no token.
func (s *Store) SaveProfile(ctx context.Context, sess models.Session) error {
	return s.storage.SetMany(ctx, map[string]string{
		KeyUserID:    sess.UserID,
		KeyEmail:     sess.Email,
		KeyFirstName: sess.FirstName,
		KeyLastName:  sess.LastName,
	})
}

// SaveToken overwrites the token only.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.storage.Set(ctx, KeyToken, token)
}

// Clear removes every session key. Safe to call on an empty store.
func (s *Store) Clear(ctx context.Context) error {
	return s.storage.Remove(ctx, allKeys...)
}

// Token returns the stored token, or "" when absent or unreadable.
func (s *Store) Token(ctx context.Context) string {
	tok, err := s.storage.Get(ctx, KeyToken)
	if err != nil {
		s.logger.Error(ctx, "read session token", "err", err)
		return ""
	}
	return tok
}

// IsAuthenticated reports whether a non-empty token is stored. It says
// nothing about whether the server still accepts that token.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// CurrentUser rebuilds the Session from storage. It returns nil when no
// token is stored or when storage cannot be read.
func (s *Store) CurrentUser(ctx context.Context) *models.Session {
	tok := s.Token(ctx)
	if tok == "" {
		return nil
	}

	sess := &models.Session{Token: tok}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{KeyUserID, &sess.UserID},
		{KeyEmail, &sess.Email},
		{KeyFirstName, &sess.FirstName},
		{KeyLastName, &sess.LastName},
	} {
		v, err := s.storage.Get(ctx, f.key)
		if err != nil {
			s.logger.Error(ctx, "read session field", "key", f.key, "err", err)
			return nil
		}
		*f.dst = v
	}
	return sess
}

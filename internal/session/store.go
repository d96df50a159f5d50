// Package session persists the authentication session (token + role) across
// process restarts. The session file is sealed with AES-256-GCM under a key
// derived from a machine fingerprint, so the token never sits on disk in
// plaintext.
package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/velourhq/velour/pkg/domain"
)

const sessionFile = "session"

// Store reads and writes the persisted session under dir.
type Store struct {
	dir string
	key []byte
}

// NewStore creates a session store rooted at dir, deriving the sealing key
// for this machine. The directory is created on first Save.
func NewStore(dir string) (*Store, error) {
	key, err := derivedKey(dir)
	if err != nil {
		return nil, fmt.Errorf("session: derive key: %w", err)
	}
	return &Store{dir: dir, key: key}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFile)
}

// Save persists the token and role. A subsequent Load, in this or any later
// process, returns the same values until Clear is called.
func (s *Store) Save(token string, role domain.Role) error {
	plain, err := json.Marshal(domain.Session{Token: token, Role: role})
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	sealed, err := s.seal(plain)
	if err != nil {
		return fmt.Errorf("session: seal: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	// Write-then-rename so a crash never leaves a torn session file.
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}

// Load returns the persisted session. A missing file is not an error; it
// yields the empty (unauthenticated) session.
func (s *Store) Load() (domain.Session, error) {
	sealed, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("session: read: %w", err)
	}
	plain, err := s.open(sealed)
	if err != nil {
		// An unreadable session (different machine, corrupted file) is
		// treated as logged out rather than a hard failure.
		return domain.Session{}, nil
	}
	var sess domain.Session
	if err := json.Unmarshal(plain, &sess); err != nil {
		return domain.Session{}, nil
	}
	return sess, nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}

func (s *Store) seal(plain []byte) ([]byte, error) {
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	gcm, err := s.gcm()
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("sealed session too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func (s *Store) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Session is the persisted login state: a token and the user it belongs
// to. Both are always written and cleared together.
type Session struct {
	path string

	Token string `json:"token"`
	User  *User  `json:"user"`
}

// LoadSession reads the session file at path. A missing file yields an
// empty session.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}
	if s.Token == "" || s.User == nil {
		s.Token, s.User = "", nil
	}
	return s, nil
}

func (s *Session) LoggedIn() bool {
	return s.Token != "" && s.User != nil
}

func (s *Session) Save(token string, user *User) error {
	s.Token, s.User = token, user

	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session dir")
	}
	return errors.Wrap(os.WriteFile(s.path, data, 0o600), "failed to write session")
}

func (s *Session) Clear() error {
	s.Token, s.User = "", nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "failed to remove session")
	}
	return nil
}

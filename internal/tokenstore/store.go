package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

const filePerm = 0600

var ErrNoToken = errors.New("no access token stored")

// Store keeps a single access token in a JSON file readable only by the owner.
type Store struct {
	path string
}

type tokenRecord struct {
	TokenID              uuid.UUID `json:"token_id"`
	ClientID             string    `json:"client_id"`
	ApplicationID        string    `json:"application_id"`
	ApplicationPartnerID string    `json:"application_partner_id"`
	Issuer               string    `json:"issuer"`
	Scope                []string  `json:"scope"`
	Token                string    `json:"token"`
	APIURI               string    `json:"api_uri"`
	Created              time.Time `json:"created"`
	NotBefore            time.Time `json:"not_before"`
	Expires              time.Time `json:"expires"`
	Modified             time.Time `json:"modified"`
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Save writes the token to disk, replacing any previous one
func (s *Store) Save(ctx context.Context, tok *personio.AccessToken) error {
	ctxLogger := log.WithContext(ctx)
	if tok == nil {
		return errors.New("refusing to save a nil access token")
	}

	rec := tokenRecord{
		TokenID:              tok.TokenID,
		ClientID:             tok.ClientID,
		ApplicationID:        tok.ApplicationID,
		ApplicationPartnerID: tok.ApplicationPartnerID,
		Issuer:               tok.Issuer,
		Scope:                tok.Scope,
		Token:                tok.Token.Reveal(),
		APIURI:               tok.APIURI,
		Created:              tok.TimeStampCreated,
		NotBefore:            tok.TimeStampNotBefore,
		Expires:              tok.TimeStampExpires,
		Modified:             tok.TimeStampModified,
	}

	file, err := json.MarshalIndent(rec, "", " ")
	if err != nil {
		ctxLogger.WithError(err).Error("Error preparing the json to write to file")
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		ctxLogger.WithError(err).Error("Error creating token directory")
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := writeFileAtomic(s.path, file); err != nil {
		ctxLogger.WithError(err).Error("Error writing token to file")
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// writeFileAtomic replaces path with data. The file always ends up with filePerm, even when an
// older copy had wider permissions.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the stored token. ErrNoToken is returned when nothing was saved yet
func (s *Store) Load(ctx context.Context) (*personio.AccessToken, error) {
	ctxLogger := log.WithContext(ctx)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoToken
	}
	if err != nil {
		ctxLogger.WithError(err).Errorf("error reading json file containing access token")
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		ctxLogger.WithError(err).Errorf("error un marshalling json file containing access token")
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}

	tok := &personio.AccessToken{
		TokenID:              rec.TokenID,
		ClientID:             rec.ClientID,
		ApplicationID:        rec.ApplicationID,
		ApplicationPartnerID: rec.ApplicationPartnerID,
		Issuer:               rec.Issuer,
		Scope:                rec.Scope,
		APIURI:               rec.APIURI,
		TimeStampCreated:     rec.Created,
		TimeStampNotBefore:   rec.NotBefore,
		TimeStampExpires:     rec.Expires,
		TimeStampModified:    rec.Modified,
	}
	if rec.Token != "" {
		tok.Token = personio.NewSecret(rec.Token)
	}
	return tok, nil
}

func (s *Store) Delete(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithContext(ctx).WithError(err).Error("Error removing token file")
		return err
	}
	return nil
}

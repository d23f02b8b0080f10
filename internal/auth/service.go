package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

type TokenStore interface {
	Save(ctx context.Context, tok *personio.AccessToken) error
	Load(ctx context.Context) (*personio.AccessToken, error)
}

type Service struct {
	store         TokenStore
	defaultAPIURI string
	now           func() time.Time
}

// TokenStatus is what callers see of the stored token. It never carries the secret.
type TokenStatus struct {
	TokenID          string    `json:"token_id,omitempty"`
	ClientID         string    `json:"client_id,omitempty"`
	Issuer           string    `json:"issuer,omitempty"`
	APIURI           string    `json:"api_uri,omitempty"`
	Scope            []string  `json:"scope"`
	Valid            bool      `json:"valid"`
	Expires          time.Time `json:"expires"`
	LifeTime         string    `json:"lifetime"`
	TimeRemaining    string    `json:"time_remaining"`
	PercentRemaining int       `json:"percent_remaining"`
	Summary          string    `json:"summary"`
}

func NewAuthService(store TokenStore, defaultAPIURI string) *Service {
	return &Service{
		store:         store,
		defaultAPIURI: defaultAPIURI,
		now:           time.Now,
	}
}

// ImportToken decodes the bearer token handed out by the API and stores it
func (service Service) ImportToken(ctx context.Context, raw string, apiURI string) (*TokenStatus, error) {
	ctxLogger := log.WithContext(ctx)
	if apiURI == "" {
		apiURI = service.defaultAPIURI
	}

	tok, err := personio.TokenFromJWT(raw, apiURI)
	if err != nil {
		ctxLogger.WithError(err).Error("could not decode the access token")
		return nil, err
	}
	defer tok.Dispose()

	if err := service.store.Save(ctx, tok); err != nil {
		ctxLogger.WithError(err).Error("could not store the access token")
		return nil, err
	}

	status := service.statusOf(tok)
	ctxLogger.WithFields(log.Fields{
		"token": tok.String(),
		"valid": status.Valid,
	}).Info("Stored access token")
	return status, nil
}

// Status reports on the stored token
func (service Service) Status(ctx context.Context) (*TokenStatus, error) {
	tok, err := service.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	defer tok.Dispose()
	return service.statusOf(tok), nil
}

func (service Service) statusOf(tok *personio.AccessToken) *TokenStatus {
	now := service.now()
	status := &TokenStatus{
		ClientID:         tok.ClientID,
		Issuer:           tok.Issuer,
		APIURI:           tok.APIURI,
		Scope:            tok.Scope,
		Valid:            tok.IsValidAt(now),
		Expires:          tok.TimeStampExpires.UTC(),
		LifeTime:         personio.FormatRemaining(tok.AccessTokenLifeTime()),
		TimeRemaining:    personio.FormatRemaining(tok.TimeRemainingAt(now)),
		PercentRemaining: tok.PercentRemainingAt(now),
		Summary:          tok.StringAt(now),
	}
	if status.Scope == nil {
		status.Scope = []string{}
	}
	if tok.TokenID != uuid.Nil {
		status.TokenID = tok.TokenID.String()
	}
	return status
}

package personio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrEmptyToken = errors.New("empty access token")

type tokenClaims struct {
	jwt.RegisteredClaims
	ClientID      string     `json:"client_id,omitempty"`
	ApplicationID string     `json:"application_id,omitempty"`
	PartnerID     string     `json:"partner_id,omitempty"`
	Scope         scopeClaim `json:"scope,omitempty"`
}

// scopeClaim accepts both the space delimited form (RFC 8693) and a JSON array.
type scopeClaim []string

func (s *scopeClaim) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = strings.Fields(single)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("scope claim is neither a string nor a list: %w", err)
	}
	*s = list
	return nil
}

// TokenFromJWT builds an AccessToken from the bearer token handed out by the API. The signature
// is not verified here; the API does that on every request.
func TokenFromJWT(raw string, apiURI string) (*AccessToken, error) {
	raw = strings.TrimSpace(trimBearer(strings.TrimSpace(raw)))
	if raw == "" {
		return nil, ErrEmptyToken
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("could not decode access token: %w", err)
	}

	tok := &AccessToken{
		ClientID:             claims.ClientID,
		ApplicationID:        claims.ApplicationID,
		ApplicationPartnerID: claims.PartnerID,
		Issuer:               claims.Issuer,
		Scope:                []string(claims.Scope),
		Token:                NewSecret(raw),
		APIURI:               apiURI,
		TimeStampCreated:     numericTime(claims.IssuedAt),
		TimeStampNotBefore:   numericTime(claims.NotBefore),
		TimeStampExpires:     numericTime(claims.ExpiresAt),
		TimeStampModified:    time.Now(),
	}
	if id, err := uuid.Parse(claims.ID); err == nil {
		tok.TokenID = id
	}
	return tok, nil
}

func numericTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

const bearerPrefix = "Bearer "

// trimBearer drops an authorization scheme prefix; the scheme is case-insensitive (RFC 7235).
func trimBearer(raw string) string {
	if len(raw) >= len(bearerPrefix) && strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		return raw[len(bearerPrefix):]
	}
	return raw
}

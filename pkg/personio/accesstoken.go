package personio

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// AccessToken describes a session against the Personio API. The zero time.Time marks an unset
// timestamp. The derived views are computed on every call.
type AccessToken struct {
	TokenID              uuid.UUID
	ClientID             string
	ApplicationID        string
	ApplicationPartnerID string
	Issuer               string
	Scope                []string
	Token                *Secret
	APIURI               string

	TimeStampCreated   time.Time
	TimeStampNotBefore time.Time
	TimeStampExpires   time.Time
	TimeStampModified  time.Time
}

// IsValid reports whether the token can be used for connections right now.
func (t *AccessToken) IsValid() bool {
	return t.IsValidAt(time.Now())
}

func (t *AccessToken) IsValidAt(now time.Time) bool {
	if t.TimeStampExpires.IsZero() || t.TimeStampExpires.Before(now) {
		return false
	}
	if !t.Token.IsSet() {
		return false
	}
	return len(t.Scope) > 0
}

// AccessTokenLifeTime returns the full lifetime of the token
func (t *AccessToken) AccessTokenLifeTime() time.Duration {
	return t.TimeStampExpires.Sub(t.TimeStampCreated)
}

// TimeRemaining is the time left until expiry in whole seconds, or zero once expired.
func (t *AccessToken) TimeRemaining() time.Duration {
	return t.TimeRemainingAt(time.Now())
}

func (t *AccessToken) TimeRemainingAt(now time.Time) time.Duration {
	if !t.TimeStampExpires.After(now) {
		return 0
	}
	return t.TimeStampExpires.Sub(now).Truncate(time.Second)
}

// PercentRemaining is the share of the lifetime left, rounded to a whole percent.
func (t *AccessToken) PercentRemaining() int {
	return t.PercentRemainingAt(time.Now())
}

func (t *AccessToken) PercentRemainingAt(now time.Time) int {
	lifetime := t.AccessTokenLifeTime()
	if lifetime <= 0 || !t.TimeStampExpires.After(now) {
		return 0
	}
	remaining := t.TimeRemainingAt(now)
	return int(math.Round(float64(remaining) / float64(lifetime) * 100))
}

// Dispose wipes the secret. The token stays readable apart from Token.
func (t *AccessToken) Dispose() {
	t.Token.Destroy()
}

func (t *AccessToken) String() string {
	return t.StringAt(time.Now())
}

func (t *AccessToken) StringAt(now time.Time) string {
	if t.APIURI == "" {
		return typeAccessToken
	}
	return t.APIURI + " | " + FormatRemaining(t.TimeRemainingAt(now))
}

// FormatRemaining renders d as [d.]hh:mm:ss, dropping anything below a second.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	if days > 0 {
		return fmt.Sprintf("%d.%02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

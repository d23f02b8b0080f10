package personio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

func newTestToken() *AccessToken {
	return &AccessToken{
		ClientID:         "papi-client",
		Scope:            []string{"employees.read", "absences.read"},
		Token:            NewSecret("eyJ.test.token"),
		APIURI:           "https://api.personio.de/v1",
		TimeStampCreated: t0,
		TimeStampExpires: t0.Add(time.Hour),
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(tok *AccessToken)
		now    time.Time
		want   bool
	}{
		{
			name: "valid",
			now:  t0.Add(10 * time.Minute),
			want: true,
		},
		{
			name: "expired",
			now:  t0.Add(2 * time.Hour),
		},
		{
			name:   "expiry unset",
			mutate: func(tok *AccessToken) { tok.TimeStampExpires = time.Time{} },
			now:    t0,
		},
		{
			name:   "no secret",
			mutate: func(tok *AccessToken) { tok.Token = nil },
			now:    t0,
		},
		{
			name:   "destroyed secret",
			mutate: func(tok *AccessToken) { tok.Dispose() },
			now:    t0,
		},
		{
			name:   "no scope",
			mutate: func(tok *AccessToken) { tok.Scope = nil },
			now:    t0,
		},
	}

	for _, test := range tests {
		tt := test
		t.Run(tt.name, func(t *testing.T) {
			tok := newTestToken()
			if tt.mutate != nil {
				tt.mutate(tok)
			}
			require.Equal(t, tt.want, tok.IsValidAt(tt.now))
		})
	}
}

func TestIsValidUsesWallClock(t *testing.T) {
	tok := newTestToken()
	tok.TimeStampCreated = time.Now()
	tok.TimeStampExpires = time.Now().Add(time.Hour)
	require.True(t, tok.IsValid())

	tok.TimeStampExpires = time.Now().Add(-time.Minute)
	require.False(t, tok.IsValid())
	require.Zero(t, tok.TimeRemaining())
	require.Zero(t, tok.PercentRemaining())
}

func TestAccessTokenLifeTime(t *testing.T) {
	tok := newTestToken()
	require.Equal(t, time.Hour, tok.AccessTokenLifeTime())

	tok.TimeStampExpires = t0.Add(36*time.Hour + 250*time.Millisecond)
	require.Equal(t, 36*time.Hour+250*time.Millisecond, tok.AccessTokenLifeTime())
}

func TestTimeRemainingAndPercent(t *testing.T) {
	tok := newTestToken()

	now := t0.Add(30 * time.Minute)
	require.Equal(t, 30*time.Minute, tok.TimeRemainingAt(now))
	require.Equal(t, 50, tok.PercentRemainingAt(now))

	// sub-second parts are dropped
	now = t0.Add(45*time.Minute + 300*time.Millisecond)
	require.Equal(t, 14*time.Minute+59*time.Second, tok.TimeRemainingAt(now))
	require.Equal(t, 25, tok.PercentRemainingAt(now))

	now = t0.Add(61 * time.Minute)
	require.Zero(t, tok.TimeRemainingAt(now))
	require.Zero(t, tok.PercentRemainingAt(now))
}

func TestPercentRemainingZeroLifetime(t *testing.T) {
	tok := newTestToken()
	tok.TimeStampCreated = tok.TimeStampExpires
	require.Zero(t, tok.PercentRemainingAt(t0))

	tok.TimeStampCreated = time.Time{}
	tok.TimeStampExpires = time.Time{}
	require.Zero(t, tok.PercentRemainingAt(t0))
}

func TestAccessTokenString(t *testing.T) {
	tok := newTestToken()
	require.Equal(t, "https://api.personio.de/v1 | 00:30:00", tok.StringAt(t0.Add(30*time.Minute)))
	require.Equal(t, "https://api.personio.de/v1 | 00:00:00", tok.StringAt(t0.Add(2*time.Hour)))

	tok.APIURI = ""
	require.Equal(t, "AccessToken", tok.StringAt(t0))
}

func TestFormatRemaining(t *testing.T) {
	require.Equal(t, "00:00:00", FormatRemaining(0))
	require.Equal(t, "00:00:00", FormatRemaining(-time.Minute))
	require.Equal(t, "01:02:03", FormatRemaining(time.Hour+2*time.Minute+3*time.Second+900*time.Millisecond))
	require.Equal(t, "2.04:00:09", FormatRemaining(52*time.Hour+9*time.Second))
}

func TestOAuth2Token(t *testing.T) {
	tok := newTestToken()
	ot := tok.OAuth2Token()
	require.Equal(t, "eyJ.test.token", ot.AccessToken)
	require.Equal(t, "Bearer", ot.Type())
	require.Equal(t, t0.Add(time.Hour), ot.Expiry)

	got, err := tok.TokenSource().Token()
	require.NoError(t, err)
	require.Equal(t, ot.AccessToken, got.AccessToken)
}

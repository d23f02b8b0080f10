package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewEnvironmentConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	env := NewEnvironmentConfig()
	require.Equal(t, 8080, env.ServerPort)
	require.Equal(t, "INFO", env.LogLevel)
	require.Equal(t, "v1", env.Version)
	require.Equal(t, "https://api.personio.de/v1", env.PersonioAPIURI)
}

func TestNewApplicationConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_TOKEN_FILE_LOCATION", "/var/run/personio/token.json")
	t.Setenv("EMAIL_TO", "hr@example.com")
	t.Setenv("EMAIL_FROM", "bot@example.com")

	cfg, err := NewApplicationConfig()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.ServerPort())
	require.Equal(t, log.DebugLevel, cfg.LogLevel())
	require.Equal(t, "/var/run/personio/token.json", cfg.TokenStore().Path())
	require.NotNil(t, cfg.Mailer())
}

func TestNewApplicationConfigInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")
	_, err := NewApplicationConfig()
	require.EqualError(t, err, "invalid SERVER_PORT -1")
}

func TestLogLevelFallback(t *testing.T) {
	cfg := &ApplicationConfig{envValues: &envConfig{LogLevel: "chatty"}}
	require.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestServerRoutes(t *testing.T) {
	server := NewServer().
		WithRoutes("", Route{
			Path:   "/health",
			Method: http.MethodGet,
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		}).
		WithRoutes("/v1", Route{
			Path:   "/boom",
			Method: http.MethodGet,
			Handler: func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			},
		})
	h := server.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://hr.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

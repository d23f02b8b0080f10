package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/internal/notify"
	"github.com/syrilster/personio-absence-kit/internal/tokenstore"
)

type ApplicationConfig struct {
	envValues  *envConfig
	tokenStore *tokenstore.Store
	mailer     *notify.Mailer
}

// Version returns application version
func (cfg *ApplicationConfig) Version() string {
	return cfg.envValues.Version
}

// ServerPort returns the port no to listen for requests
func (cfg *ApplicationConfig) ServerPort() int {
	return cfg.envValues.ServerPort
}

// LogLevel returns the configured logrus level
func (cfg *ApplicationConfig) LogLevel() log.Level {
	level, err := log.ParseLevel(cfg.envValues.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// PersonioAPIURI returns the API endpoint imported tokens are bound to by default
func (cfg *ApplicationConfig) PersonioAPIURI() string {
	return cfg.envValues.PersonioAPIURI
}

// TokenStore returns the store holding the access token
func (cfg *ApplicationConfig) TokenStore() *tokenstore.Store {
	return cfg.tokenStore
}

// XlsFileLocation returns the file location of the uploaded absence balances
func (cfg *ApplicationConfig) XlsFileLocation() string {
	return cfg.envValues.XlsFileLocation
}

// ReportFileLocation returns where the generated report is written
func (cfg *ApplicationConfig) ReportFileLocation() string {
	return cfg.envValues.ReportFileLocation
}

// Mailer returns the report mailer
func (cfg *ApplicationConfig) Mailer() *notify.Mailer {
	return cfg.mailer
}

// NewApplicationConfig loads config values from environment and initialises config
func NewApplicationConfig() (*ApplicationConfig, error) {
	envValues := NewEnvironmentConfig()
	if envValues.ServerPort <= 0 {
		return nil, fmt.Errorf("invalid SERVER_PORT %v", envValues.ServerPort)
	}

	sess, err := session.NewSession(aws.NewConfig().WithRegion(envValues.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &ApplicationConfig{
		envValues:  envValues,
		tokenStore: tokenstore.New(envValues.AuthTokenFileLocation),
		mailer:     notify.NewMailer(ses.New(sess), envValues.EmailTo, envValues.EmailFrom),
	}, nil
}

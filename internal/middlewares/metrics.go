package middlewares

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/internal/tokenstore"
	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

// TokenLoader returns the current access token. tokenstore.Store satisfies it.
type TokenLoader interface {
	Load(ctx context.Context) (*personio.AccessToken, error)
}

// TokenCollector reports the state of the stored access token on every scrape.
type TokenCollector struct {
	loader TokenLoader
	now    func() time.Time

	valid     *prometheus.Desc
	percent   *prometheus.Desc
	remaining *prometheus.Desc
	present   *prometheus.Desc
}

func NewTokenCollector(loader TokenLoader) *TokenCollector {
	return &TokenCollector{
		loader: loader,
		now:    time.Now,
		present: prometheus.NewDesc("personio_token_present",
			"Whether an access token is stored", nil, nil),
		valid: prometheus.NewDesc("personio_token_valid",
			"Whether the stored access token can be used for connections", []string{"api_uri"}, nil),
		percent: prometheus.NewDesc("personio_token_percent_remaining",
			"Share of the token lifetime left, in percent", []string{"api_uri"}, nil),
		remaining: prometheus.NewDesc("personio_token_seconds_remaining",
			"Seconds until the access token expires", []string{"api_uri"}, nil),
	}
}

func (c *TokenCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.present
	ch <- c.valid
	ch <- c.percent
	ch <- c.remaining
}

func (c *TokenCollector) Collect(ch chan<- prometheus.Metric) {
	tok, err := c.loader.Load(context.Background())
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNoToken) {
			log.WithError(err).Warn("Could not load access token for metrics")
		}
		ch <- prometheus.MustNewConstMetric(c.present, prometheus.GaugeValue, 0)
		return
	}
	defer tok.Dispose()

	now := c.now()
	valid := 0.0
	if tok.IsValidAt(now) {
		valid = 1
	}
	ch <- prometheus.MustNewConstMetric(c.present, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(c.valid, prometheus.GaugeValue, valid, tok.APIURI)
	ch <- prometheus.MustNewConstMetric(c.percent, prometheus.GaugeValue,
		float64(tok.PercentRemainingAt(now)), tok.APIURI)
	ch <- prometheus.MustNewConstMetric(c.remaining, prometheus.GaugeValue,
		tok.TimeRemainingAt(now).Seconds(), tok.APIURI)
}

// MetricsHandler serves the prometheus registry
func MetricsHandler(reg *prometheus.Registry) http.HandlerFunc {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP
}

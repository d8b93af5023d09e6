// Package checkout is a client for the Checkout.com payments REST API.
// Every resource group shares one transport that sets headers, encodes
// bodies and turns failures into *types.APIError values.
package checkout

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/vitwit/checkout/config"
	"github.com/vitwit/checkout/logger"
	"github.com/vitwit/checkout/metrics"
	"github.com/vitwit/checkout/resources"
	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/types"
	"github.com/vitwit/checkout/utils"
	"github.com/vitwit/checkout/verification"
)

// Version is reported in the User-Agent header. Release builds set it
// with -ldflags "-X github.com/vitwit/checkout.Version=...".
var Version = "1.0.0"

const defaultTimeout = 30 * time.Second

// Checkout is the API client. The embedded resource groups are safe for
// concurrent use.
type Checkout struct {
	*resources.Client

	config    *types.ClientConfig
	transport *transport.Transport

	logger    logger.Logger
	metrics   metrics.Recorder
	backend   transport.Backend
	timeout   time.Duration
	version   string
	validator verification.Validator
	multipart transport.MultipartBuilder
}

// New creates a client from a validated configuration.
func New(cfg *types.ClientConfig, opts ...Option) (*Checkout, error) {
	if err := utils.ValidateClientConfig(cfg); err != nil {
		return nil, err
	}

	c := &Checkout{config: cfg, version: Version}
	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		cfg.Timeout = c.timeout
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if c.logger == nil {
		c.logger = logger.NoopLogger{}
	}
	if c.metrics == nil {
		c.metrics = metrics.NoopRecorder{}
		if cfg.EnableMetrics {
			rec, err := metrics.NewPrometheusRecorder(prometheus.DefaultRegisterer)
			if err != nil {
				return nil, types.NewValueError("failed to register metrics: " + err.Error())
			}
			c.metrics = rec
		}
	}

	c.transport = transport.New(cfg, transport.Options{
		Backend: c.backend,
		Version: c.version,
		Logger:  c.logger,
		Metrics: c.metrics,
	})
	c.Client = resources.New(c.transport, cfg, resources.Options{
		Validator: c.validator,
		Multipart: c.multipart,
	})

	return c, nil
}

// NewWithDefaults creates a sandbox client for the given keys, logging
// through zap at info level.
func NewWithDefaults(secretKey, publicKey string, opts ...Option) (*Checkout, error) {
	cfg := &types.ClientConfig{
		Environment: types.EnvironmentSandbox,
		SecretKey:   secretKey,
		PublicKey:   publicKey,
		Timeout:     defaultTimeout,
		LogLevel:    "info",
	}
	return New(cfg, append([]Option{WithLogger(logger.NewZapLogger(cfg.LogLevel))}, opts...)...)
}

// NewFromEnv creates a client from CKO_* environment variables and an
// optional .env file in the working directory.
func NewFromEnv(opts ...Option) (*Checkout, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg, append([]Option{WithLogger(logger.NewZapLogger(cfg.LogLevel))}, opts...)...)
}

// Config returns the configuration shared by every call.
func (c *Checkout) Config() *types.ClientConfig {
	return c.config
}

// Transport exposes the underlying transport for calls not covered by a
// resource group.
func (c *Checkout) Transport() *transport.Transport {
	return c.transport
}

// Close flushes buffered log entries.
func (c *Checkout) Close() error {
	if z, ok := c.logger.(*logger.ZapLogger); ok {
		return z.Sync()
	}
	return nil
}

// GetVersion returns version information
func GetVersion() map[string]interface{} {
	return map[string]interface{}{
		"library_version": Version,
		"user_agent":      "checkout-sdk-go/" + Version,
		"environments": []string{
			types.EnvironmentSandbox.String(),
			types.EnvironmentLive.String(),
		},
		"supported_currencies": utils.SupportedCurrencies(),
	}
}

// MinorUnits converts a decimal amount such as "10.50" into the integer
// minor units the API expects, given the currency exponent.
func MinorUnits(amount string, exponent int32) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, types.NewValueError("invalid amount: " + amount)
	}
	scaled := d.Shift(exponent)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, types.NewValueError("amount has more decimal places than the currency allows: " + amount)
	}
	return scaled.IntPart(), nil
}

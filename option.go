package checkout

import (
	"time"

	"github.com/vitwit/checkout/logger"
	"github.com/vitwit/checkout/metrics"
	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/verification"
)

type Option func(*Checkout)

func WithLogger(l logger.Logger) Option {
	return func(c *Checkout) {
		c.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(c *Checkout) {
		c.metrics = r
	}
}

// WithTimeout overrides the configured request timeout. It has no effect
// together with WithBackend.
func WithTimeout(t time.Duration) Option {
	return func(c *Checkout) {
		c.timeout = t
	}
}

// WithBackend replaces the HTTP client used for every call.
func WithBackend(b transport.Backend) Option {
	return func(c *Checkout) {
		c.backend = b
	}
}

// WithVersion overrides the version reported in the User-Agent header.
func WithVersion(v string) Option {
	return func(c *Checkout) {
		c.version = v
	}
}

// WithValidator replaces the payment request validator.
func WithValidator(v verification.Validator) Option {
	return func(c *Checkout) {
		c.validator = v
	}
}

// WithMultipart replaces the multipart body builder used for file uploads.
func WithMultipart(m transport.MultipartBuilder) Option {
	return func(c *Checkout) {
		c.multipart = m
	}
}

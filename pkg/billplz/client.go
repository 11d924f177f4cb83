// Package billplz is a typed client for the Billplz payment gateway API.
//
// Reads are plain methods on Client. Creates return a builder that collects
// optional fields and performs the request on Send.
package billplz

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Environment int

const (
	Production Environment = iota + 1
	Staging
)

const (
	ProductionURL = "https://www.billplz.com"
	StagingURL    = "https://www.billplz-sandbox.com"
)

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Staging:
		return "staging"
	default:
		return "unknown"
	}
}

func (e Environment) BaseURL() string {
	if e == Production {
		return ProductionURL
	}
	return StagingURL
}

// ParseEnvironment maps exactly "production" to Production. Every other
// value, including other casings and the empty string, selects Staging.
func ParseEnvironment(s string) Environment {
	if s == "production" {
		return Production
	}
	return Staging
}

type Client struct {
	http        *http.Client
	baseURL     string
	apiKey      string
	environment Environment
	logger      zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(env Environment, apiKey string, opts ...Option) *Client {
	c := newClient(env.BaseURL(), apiKey, opts)
	c.environment = env
	return c
}

// NewWithBaseURL points the client at an arbitrary host. The client has no
// environment, so FpxBanks returns the production list.
func NewWithBaseURL(baseURL, apiKey string, opts ...Option) *Client {
	return newClient(baseURL, apiKey, opts)
}

func newClient(baseURL, apiKey string, opts []Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Environment reports the environment the client was built for. ok is false
// for clients created with NewWithBaseURL.
func (c *Client) Environment() (env Environment, ok bool) {
	return c.environment, c.environment != 0
}

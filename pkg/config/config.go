/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config holds the immutable configuration snapshot shared by the wallet engine.
// A Config is built once by New and passed explicitly to every component constructor.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Environment selects the Velocity Network registrar a wallet talks to.
type Environment string

const (
	EnvironmentProd    Environment = "prod"
	EnvironmentStaging Environment = "staging"
	EnvironmentQA      Environment = "qa"
	EnvironmentDev     Environment = "dev"
)

// ProtocolVersion is sent with every request in the x-vnf-protocol-version header.
type ProtocolVersion string

const (
	ProtocolVersion1 ProtocolVersion = "1.0"
	ProtocolVersion2 ProtocolVersion = "2.0"
)

const (
	registrarAPIPath = "/api/v0.6"

	defaultRequestTimeout = 30 * time.Second
	defaultMaxRetries     = 3
)

var registrarHosts = map[Environment]string{ //nolint:gochecknoglobals
	EnvironmentProd:    "https://registrar.velocitynetwork.foundation",
	EnvironmentStaging: "https://stagingregistrar.velocitynetwork.foundation",
	EnvironmentQA:      "https://qaregistrar.velocitynetwork.foundation",
	EnvironmentDev:     "https://devregistrar.velocitynetwork.foundation",
}

// Config is the read-only configuration snapshot. The zero value is not valid; use New.
type Config struct {
	environment     Environment
	protocolVersion ProtocolVersion
	debug           bool
	registrarURL    string
	requestTimeout  time.Duration
	maxRetries      uint64
}

// Opt configures New.
type Opt func(c *Config)

// WithEnvironment sets the network environment. Defaults to prod.
func WithEnvironment(env Environment) Opt {
	return func(c *Config) {
		c.environment = env
	}
}

// WithProtocolVersion sets the exchange protocol version. Defaults to 1.0.
func WithProtocolVersion(v ProtocolVersion) Opt {
	return func(c *Config) {
		c.protocolVersion = v
	}
}

// WithDebug turns on debug behaviour (verbose logging).
func WithDebug(debug bool) Opt {
	return func(c *Config) {
		c.debug = debug
	}
}

// WithRegistrarURL overrides the registrar derived from the environment.
func WithRegistrarURL(u string) Opt {
	return func(c *Config) {
		c.registrarURL = u
	}
}

// WithRequestTimeout sets the per-request transport timeout.
func WithRequestTimeout(d time.Duration) Opt {
	return func(c *Config) {
		c.requestTimeout = d
	}
}

// WithMaxRetries sets how many times the transport retries a failed request.
func WithMaxRetries(n uint64) Opt {
	return func(c *Config) {
		c.maxRetries = n
	}
}

// New validates the options and returns the configuration snapshot.
func New(opts ...Opt) (*Config, error) {
	c := &Config{
		environment:     EnvironmentProd,
		protocolVersion: ProtocolVersion1,
		requestTimeout:  defaultRequestTimeout,
		maxRetries:      defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.protocolVersion != ProtocolVersion1 && c.protocolVersion != ProtocolVersion2 {
		return nil, fmt.Errorf("unsupported protocol version: %q", c.protocolVersion)
	}

	if c.registrarURL == "" {
		host, ok := registrarHosts[c.environment]
		if !ok {
			return nil, fmt.Errorf("unsupported environment: %q", c.environment)
		}

		c.registrarURL = host
	}

	if _, err := url.ParseRequestURI(c.registrarURL); err != nil {
		return nil, fmt.Errorf("invalid registrar url: %w", err)
	}

	c.registrarURL = strings.TrimSuffix(c.registrarURL, "/")

	if c.requestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive: %s", c.requestTimeout)
	}

	return c, nil
}

// ParseEnvironment converts a CLI/env value to an Environment.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToLower(s))
	if _, ok := registrarHosts[env]; !ok {
		return "", fmt.Errorf("unsupported environment: %q", s)
	}

	return env, nil
}

func (c *Config) Environment() Environment {
	return c.environment
}

func (c *Config) ProtocolVersion() ProtocolVersion {
	return c.protocolVersion
}

func (c *Config) IsDebugOn() bool {
	return c.debug
}

func (c *Config) RegistrarURL() string {
	return c.registrarURL
}

func (c *Config) RequestTimeout() time.Duration {
	return c.requestTimeout
}

func (c *Config) MaxRetries() uint64 {
	return c.maxRetries
}

// ResolveDIDURL returns the registrar endpoint resolving the given DID.
func (c *Config) ResolveDIDURL(did string) string {
	return c.registrarURL + registrarAPIPath + "/resolve-did/" + url.PathEscape(did)
}

// VerifiedProfileURL returns the registrar endpoint serving the organization's verified profile.
func (c *Config) VerifiedProfileURL(did string) string {
	return c.registrarURL + registrarAPIPath + "/organizations/" + url.PathEscape(did) + "/verified-profile"
}

// CredentialTypesURL returns the registrar endpoint listing credential types.
func (c *Config) CredentialTypesURL() string {
	return c.registrarURL + registrarAPIPath + "/credential-types"
}

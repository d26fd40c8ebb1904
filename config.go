package dnstheory

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AuthScheme selects where the shared token is presented.
type AuthScheme string

const (
	// AuthSchemePath expects the token as the final path segment:
	// GET /update/{token}.
	AuthSchemePath AuthScheme = "path"
	// AuthSchemeBearer expects an Authorization: Bearer header on
	// GET /update.
	AuthSchemeBearer AuthScheme = "bearer"
)

const DefaultTTLSeconds = 300

// Config is the immutable deployment configuration injected into New.
//
// Exactly one auth scheme is active per deployment, and the trusted-proxy
// decision is an explicit field rather than a runtime branch so the trust
// boundary stays auditable.
type Config struct {
	ZoneID     string `yaml:"zone_id"`
	RecordName string `yaml:"record_name"`
	TTLSeconds int64  `yaml:"ttl_seconds"`

	AuthScheme AuthScheme `yaml:"auth_scheme"`
	// AuthToken is the shared secret for StaticTokenSource deployments.
	// Leave empty when a TokenSource option (e.g. Secrets Manager) is wired.
	AuthToken string `yaml:"auth_token"`

	// TrustedProxyHeader, when non-empty, names the single header consulted
	// for the caller address instead of the transport source IP. Only set
	// this behind a proxy you control.
	TrustedProxyHeader string `yaml:"trusted_proxy_header"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ZoneID) == "" {
		return &AppError{Code: errorCodeConfig, Message: "zone_id is required"}
	}
	if strings.TrimSpace(c.RecordName) == "" {
		return &AppError{Code: errorCodeConfig, Message: "record_name is required"}
	}
	if c.TTLSeconds < 0 {
		return &AppError{Code: errorCodeConfig, Message: "ttl_seconds must not be negative"}
	}
	switch c.AuthScheme {
	case AuthSchemePath, AuthSchemeBearer:
	default:
		return &AppError{Code: errorCodeConfig, Message: fmt.Sprintf("auth_scheme must be %q or %q", AuthSchemePath, AuthSchemeBearer)}
	}
	return nil
}

// Target returns the record target this deployment manages.
func (c Config) Target() RecordTarget {
	ttl := c.TTLSeconds
	if ttl == 0 {
		ttl = DefaultTTLSeconds
	}
	return RecordTarget{
		ZoneID:     c.ZoneID,
		Name:       c.RecordName,
		Type:       RecordTypeA,
		TTLSeconds: ttl,
	}
}

// ConfigFromEnv builds a Config from DNSTHEORY_* environment variables.
// This is the loader used inside Lambda, where configuration arrives as
// function environment.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		ZoneID:             strings.TrimSpace(os.Getenv("DNSTHEORY_ZONE_ID")),
		RecordName:         strings.TrimSpace(os.Getenv("DNSTHEORY_RECORD_NAME")),
		AuthScheme:         AuthScheme(strings.TrimSpace(os.Getenv("DNSTHEORY_AUTH_SCHEME"))),
		AuthToken:          strings.TrimSpace(os.Getenv("DNSTHEORY_AUTH_TOKEN")),
		TrustedProxyHeader: strings.TrimSpace(os.Getenv("DNSTHEORY_TRUSTED_PROXY_HEADER")),
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = AuthSchemeBearer
	}

	if raw := strings.TrimSpace(os.Getenv("DNSTHEORY_TTL_SECONDS")); raw != "" {
		ttl, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, &AppError{Code: errorCodeConfig, Message: "DNSTHEORY_TTL_SECONDS must be an integer"}
		}
		cfg.TTLSeconds = ttl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromFile reads a YAML configuration file, for runs outside Lambda.
func ConfigFromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &AppError{Code: errorCodeConfig, Message: fmt.Sprintf("read config: %v", err)}
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, &AppError{Code: errorCodeConfig, Message: fmt.Sprintf("parse config: %v", err)}
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = AuthSchemeBearer
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

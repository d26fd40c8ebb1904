package dnstheory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// TokenSource supplies the expected shared secret on each request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token from configuration.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}

type secretsAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerTokenSource reads the shared secret from AWS Secrets Manager
// and caches it briefly, so token rotation takes effect without redeploying
// while steady-state requests avoid a Secrets Manager round trip.
type SecretsManagerTokenSource struct {
	client    secretsAPI
	secretARN string
	clock     Clock
	cacheTTL  time.Duration

	mu     sync.RWMutex
	cached string
	expiry time.Time
}

type SecretsManagerTokenSourceOptions struct {
	// CacheTTL defaults to 30 seconds when zero.
	CacheTTL time.Duration
	Clock    Clock
}

func NewSecretsManagerTokenSource(client secretsAPI, secretARN string, opts SecretsManagerTokenSourceOptions) *SecretsManagerTokenSource {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	return &SecretsManagerTokenSource{
		client:    client,
		secretARN: strings.TrimSpace(secretARN),
		clock:     clock,
		cacheTTL:  ttl,
	}
}

func (s *SecretsManagerTokenSource) Token(ctx context.Context) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("dnstheory: secrets manager token source is nil")
	}

	s.mu.RLock()
	if s.cached != "" && s.clock.Now().Before(s.expiry) {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretARN),
	})
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(aws.ToString(out.SecretString))
	if token == "" {
		return "", errors.New("dnstheory: secret value is empty")
	}

	s.mu.Lock()
	s.cached = token
	s.expiry = s.clock.Now().Add(s.cacheTTL)
	s.mu.Unlock()
	return token, nil
}

// Command updater runs the dnstheory IP-change DNS updater.
//
// In Lambda it serves Function URL events; outside Lambda it listens on
// DNSTHEORY_LISTEN_ADDR (default :8080) for local development.
package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/theory-cloud/dnstheory"
	obszap "github.com/theory-cloud/dnstheory/pkg/observability/zap"
	"github.com/theory-cloud/dnstheory/route53dns"
)

func main() {
	ctx := context.Background()

	logger, err := buildLogger(ctx)
	if err != nil {
		os.Stderr.WriteString("updater: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = logger.Flush(flushCtx)
	}()

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("configuration invalid", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("aws config load failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := []dnstheory.Option{dnstheory.WithLogger(logger)}
	secretARN := strings.TrimSpace(os.Getenv("DNSTHEORY_TOKEN_SECRET_ARN"))
	if secretARN == "" && cfg.AuthToken == "" {
		logger.Error("no auth token configured", map[string]any{
			"hint": "set DNSTHEORY_AUTH_TOKEN or DNSTHEORY_TOKEN_SECRET_ARN",
		})
		os.Exit(1)
	}
	if secretARN != "" {
		tokens := dnstheory.NewSecretsManagerTokenSource(
			secretsmanager.NewFromConfig(awsCfg),
			secretARN,
			dnstheory.SecretsManagerTokenSourceOptions{},
		)
		opts = append(opts, dnstheory.WithTokenSource(tokens))
	}

	provider := route53dns.NewFromClient(route53.NewFromConfig(awsCfg))
	app, err := dnstheory.New(cfg, provider, opts...)
	if err != nil {
		logger.Error("app construction failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	if dnstheory.IsLambda() {
		lambda.Start(func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
			return app.ServeLambdaFunctionURL(ctx, event), nil
		})
		return
	}

	addr := strings.TrimSpace(os.Getenv("DNSTHEORY_LISTEN_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	logger.Info("listening", map[string]any{"addr": addr})
	if err := http.ListenAndServe(addr, app.HTTPHandler()); err != nil {
		logger.Error("listener failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func buildLogger(ctx context.Context) (*obszap.Logger, error) {
	var opts []obszap.Option
	if topicARN := strings.TrimSpace(os.Getenv("DNSTHEORY_ERROR_TOPIC_ARN")); topicARN != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		notifier := obszap.NewSNSNotifier(sns.NewFromConfig(awsCfg), topicARN, obszap.SNSNotifierOptions{
			Subject: strings.TrimSpace(os.Getenv("DNSTHEORY_ERROR_TOPIC_SUBJECT")),
		})
		opts = append(opts, obszap.WithErrorNotifier(notifier))
	}
	return obszap.NewLogger(os.Getenv("DNSTHEORY_LOG_LEVEL"), opts...)
}

func loadConfig() (dnstheory.Config, error) {
	if path := strings.TrimSpace(os.Getenv("DNSTHEORY_CONFIG_FILE")); path != "" {
		return dnstheory.ConfigFromFile(path)
	}
	return dnstheory.ConfigFromEnv()
}

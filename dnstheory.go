package dnstheory

import "github.com/theory-cloud/dnstheory/pkg/observability"

// App is the root container for a dnstheory updater deployment.
//
// An App binds one immutable record target and one auth scheme to the
// update routes. The hosting runtime may invoke Serve concurrently; the App
// holds no mutable per-request state.
type App struct {
	cfg      Config
	provider Provider
	tokens   TokenSource

	router      *router
	clock       Clock
	ids         IDGenerator
	logger      observability.StructuredLogger
	obs         ObservabilityHooks
	middlewares []Middleware
}

type Option func(*App)

// New creates an updater App for the given configuration and DNS provider.
//
// The update routes are registered according to cfg.AuthScheme: exactly one
// of GET|POST /update/{token} or GET|POST /update with a bearer header is
// active per deployment.
func New(cfg Config, provider Provider, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, &AppError{Code: errorCodeInternal, Message: "nil provider"}
	}

	app := &App{
		cfg:      cfg,
		provider: provider,
		router:   newRouter(),
		clock:    RealClock{},
		ids:      ULIDGenerator{},
		logger:   observability.NewNoOpLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(app)
	}

	if app.tokens == nil {
		app.tokens = StaticTokenSource(cfg.AuthToken)
	}

	switch cfg.AuthScheme {
	case AuthSchemePath:
		app.router.add("GET", "/update/{token}", app.handleUpdate)
		app.router.add("POST", "/update/{token}", app.handleUpdate)
	case AuthSchemeBearer:
		app.router.add("GET", "/update", app.handleUpdate)
		app.router.add("POST", "/update", app.handleUpdate)
	}
	app.router.add("GET", "/healthz", app.handleHealth)

	return app, nil
}

func WithClock(clock Clock) Option {
	return func(app *App) {
		if clock == nil {
			app.clock = RealClock{}
			return
		}
		app.clock = clock
	}
}

func WithIDGenerator(ids IDGenerator) Option {
	return func(app *App) {
		if ids == nil {
			app.ids = ULIDGenerator{}
			return
		}
		app.ids = ids
	}
}

func WithLogger(logger observability.StructuredLogger) Option {
	return func(app *App) {
		if logger == nil {
			app.logger = observability.NewNoOpLogger()
			return
		}
		app.logger = logger
	}
}

func WithTokenSource(tokens TokenSource) Option {
	return func(app *App) {
		app.tokens = tokens
	}
}

func WithObservability(hooks ObservabilityHooks) Option {
	return func(app *App) {
		app.obs = hooks
	}
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// apiPrefix is the second mount point of the auth routes.
const apiPrefix = "/api"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	signer       SignerCheck

	RegistrationService *service.RegistrationService
	LoginService        *service.LoginService

	// Limiters builds the rate limiters for the credential endpoints.
	// Defaults to in-process limiters.
	Limiters httpx.LimiterFactory

	// ClientIP keys the per-IP limits. Defaults to the peer address.
	ClientIP httpx.KeyExtractor
}

func NewRouter(buildVersion string, st store.Store, signer SignerCheck, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		signer:       signer,
		Limiters:     httpx.MemoryLimiterFactory,
		ClientIP:     httpx.IPKeyExtractor,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	User registration and login issuing HS256 signed JWT access tokens.
//	@description
//	@description	Access tokens carry sub, iat and exp claims and expire 30 minutes after issue.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/accounts
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// One limiter per endpoint, shared by both mount points so the /api
	// alias cannot be used to double the budget.
	signupLimiter := r.Limiters("signup", httpx.StrictLimit)
	loginLimiter := r.Limiters("login", httpx.StrictLimit)

	signup := httpx.Chain(&SignupHandler{RegistrationService: r.RegistrationService},
		httpx.RateLimitByIP(signupLimiter, httpx.StrictLimit, r.ClientIP),
	)

	// Login is limited per IP and email.
	login := httpx.Chain(&LoginHandler{LoginService: r.LoginService},
		httpx.RateLimitByIPAndFormField(loginLimiter, httpx.StrictLimit, r.ClientIP, "email"),
	)

	for _, prefix := range []string{"", apiPrefix} {
		r.Mux.Handle("POST "+prefix+"/auth/signup", signup)
		r.Mux.Handle("POST "+prefix+"/auth/login", login)
	}
}

func (r *Router) registerSystem() {
	// Health probes are polled by monitoring, so they get the lenient limit.
	healthLimiter := r.Limiters("health", httpx.LenientLimit)

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(healthLimiter, httpx.LenientLimit, r.ClientIP),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(healthLimiter, httpx.LenientLimit, r.ClientIP),
		),
	)
}

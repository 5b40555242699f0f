package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-stateless-auth-server/auth"
	"github.com/jrsteele09/go-stateless-auth-server/internal/config"
	"github.com/jrsteele09/go-stateless-auth-server/token"
	"github.com/jrsteele09/go-stateless-auth-server/token/usedcodes"
	"github.com/rs/zerolog/log"
)

const redisConnectTimeout = 5 * time.Second

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	auth      *auth.AuthorizationService
	usedCodes usedcodes.Repo
	limiter   *RateLimiter
}

type serverOptions struct {
	nowFunc   func() time.Time
	usedCodes usedcodes.Repo
}

type Option func(*serverOptions)

// WithNowFunc overrides the clock used to stamp and check tokens (tests)
func WithNowFunc(now func() time.Time) Option {
	return func(o *serverOptions) {
		o.nowFunc = now
	}
}

// WithUsedCodesRepo supplies the store for redeemed codes instead of building
// one from config
func WithUsedCodesRepo(repo usedcodes.Repo) Option {
	return func(o *serverOptions) {
		o.usedCodes = repo
	}
}

func New(cfg config.Config, options ...Option) (*Server, error) {
	opts := serverOptions{nowFunc: time.Now}
	for _, opt := range options {
		opt(&opts)
	}

	if cfg.GetJWTSecret() == config.InsecureDefaultSecret {
		log.Warn().Msg("JWT_SECRET is not set, tokens are signed with the insecure development secret")
	}

	signer := token.NewHMACSigner(cfg.GetJWTSecret(), token.WithNowFunc(opts.nowFunc))
	issuer := token.NewIssuer(signer, token.WithTokenExpiry(
		cfg.GetAuthCodeTimeout(),
		cfg.GetDefaultAccessTokenExpiry(),
		cfg.GetDefaultRefreshTokenExpiry(),
	))

	s := &Server{
		env:    cfg.GetEnv(),
		mux:    http.NewServeMux(),
		config: cfg,
	}

	var authOptions []auth.AuthorizationServiceOption
	if cfg.GetSingleUseCodes() {
		repo, err := newUsedCodesRepo(cfg, opts)
		if err != nil {
			return nil, fmt.Errorf("[Server New] used codes repo: %w", err)
		}
		s.usedCodes = repo
		authOptions = append(authOptions, auth.WithUsedCodes(repo))
	}

	authService, err := auth.NewAuthorizationService(
		auth.Client{ID: cfg.GetClientID(), RedirectURI: cfg.GetRedirectURI()},
		issuer,
		authOptions...,
	)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("[Server New] failed to create authorization service: %w", err)
	}
	s.auth = authService

	if cfg.GetEnableRateLimiting() {
		s.limiter = NewRateLimiter(cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst())
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func newUsedCodesRepo(cfg config.Config, opts serverOptions) (usedcodes.Repo, error) {
	if opts.usedCodes != nil {
		return opts.usedCodes, nil
	}
	if addr := cfg.GetRedisAddr(); addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		defer cancel()
		log.Info().Str("addr", addr).Msg("tracking redeemed authorization codes in redis")
		return usedcodes.NewRedisRepo(ctx, addr)
	}
	return usedcodes.NewInMemoryRepo(usedcodes.WithNowFunc(opts.nowFunc)), nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Close releases the used-code store and stops the rate limiter
func (s *Server) Close() error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.usedCodes != nil {
		return s.usedCodes.Close()
	}
	return nil
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			log.Debug().Str("method", parts[0]).Str("path", parts[1]).Msg("route registered")
		} else {
			log.Debug().Str("path", parts[0]).Msg("route registered")
		}
	}
}

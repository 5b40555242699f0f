// Package democlient is a small relying party that drives the authorization
// code flow against the server and shows the tokens it receives.
package democlient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	RouteHome    = "/"
	RouteProcess = "/process"
	RouteRefresh = "/refresh"
)

type Config struct {
	ClientID      string
	RedirectURI   string
	AuthServerURL string
}

// OAuth2Config builds the x/oauth2 configuration for the authorization server.
// The client has no secret so credentials always go in the request body.
func (c Config) OAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:    c.ClientID,
		RedirectURL: c.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.AuthServerURL + "/oauth/authorize",
			TokenURL:  c.AuthServerURL + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

type Client struct {
	oauth   *oauth2.Config
	states  StateRepo
	mux     *http.ServeMux
	nowFunc func() time.Time
}

type Option func(*Client)

func WithStateRepo(repo StateRepo) Option {
	return func(c *Client) {
		c.states = repo
	}
}

func New(cfg Config, options ...Option) *Client {
	c := &Client{
		oauth:   cfg.OAuth2Config(),
		mux:     http.NewServeMux(),
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.states == nil {
		c.states = NewInMemoryStateRepo(DefaultStateTTL, c.nowFunc)
	}

	c.mux.HandleFunc("GET "+RouteHome+"{$}", c.Home())
	c.mux.HandleFunc("GET "+RouteProcess, c.Process())
	c.mux.HandleFunc("POST "+RouteRefresh, c.Refresh())
	return c
}

func (c *Client) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mux.ServeHTTP(w, r)
}

// Home starts a new authorization round trip
func (c *Client) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()
		if err := c.states.Upsert(state, &FlowState{CreatedAt: c.nowFunc()}); err != nil {
			log.Error().Err(err).Msg("failed to save authorization state")
			http.Error(w, "failed to start authorization", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, c.oauth.AuthCodeURL(state), http.StatusFound)
	}
}

// Process is the redirect URI: it checks the state and exchanges the code for tokens
func (c *Client) Process() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.FormValue("state")
		code := r.FormValue("code")
		if errorParam := r.FormValue("error"); errorParam != "" {
			http.Error(w, fmt.Sprintf("Authorization failed: %s - %s", errorParam, r.FormValue("error_description")), http.StatusBadRequest)
			return
		}

		if code == "" || state == "" {
			http.Error(w, "Missing code or state parameter", http.StatusBadRequest)
			return
		}

		if _, err := c.states.Get(state); err != nil {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}
		if err := c.states.Delete(state); err != nil {
			http.Error(w, "Invalid state parameter", http.StatusInternalServerError)
			return
		}

		tok, err := c.oauth.Exchange(r.Context(), code)
		if err != nil {
			log.Warn().Err(err).Msg("token exchange failed")
			http.Error(w, fmt.Sprintf("Token exchange failed: %v", err), http.StatusBadGateway)
			return
		}
		writeToken(w, tok)
	}
}

// Refresh trades the refresh_token form value for a new token pair
func (c *Client) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshToken := r.FormValue("refresh_token")
		if refreshToken == "" {
			http.Error(w, "Missing refresh_token parameter", http.StatusBadRequest)
			return
		}

		// no access token so the source always goes to the token endpoint
		tok, err := c.oauth.TokenSource(r.Context(), &oauth2.Token{RefreshToken: refreshToken}).Token()
		if err != nil {
			log.Warn().Err(err).Msg("token refresh failed")
			http.Error(w, fmt.Sprintf("Token refresh failed: %v", err), http.StatusBadGateway)
			return
		}
		writeToken(w, tok)
	}
}

type tokenView struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

func writeToken(w http.ResponseWriter, tok *oauth2.Token) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(tokenView{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	})
}

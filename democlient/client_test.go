package democlient_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/go-stateless-auth-server/democlient"
	"github.com/jrsteele09/go-stateless-auth-server/internal/config"
	"github.com/jrsteele09/go-stateless-auth-server/server"
	"github.com/stretchr/testify/require"
)

const testClientID = "upfirst"

type authServerConfig struct {
	config.Config
	redirectURI string
}

func (authServerConfig) GetEnv() string              { return "TEST" }
func (authServerConfig) GetJWTSecret() string        { return "democlient-test-secret" }
func (authServerConfig) GetClientID() string         { return testClientID }
func (authServerConfig) GetRedisAddr() string        { return "" }
func (authServerConfig) GetEnableRateLimiting() bool { return false }
func (c authServerConfig) GetRedirectURI() string    { return c.redirectURI }

type tokenView struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

// startFlow runs both servers and returns the client server URL
func startFlow(t *testing.T) string {
	t.Helper()

	var client http.Handler
	clientServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client.ServeHTTP(w, r)
	}))
	t.Cleanup(clientServer.Close)

	authServer, err := server.New(authServerConfig{Config: config.New(), redirectURI: clientServer.URL + democlient.RouteProcess})
	require.NoError(t, err)
	t.Cleanup(func() { _ = authServer.Close() })
	authTS := httptest.NewServer(authServer)
	t.Cleanup(authTS.Close)

	client = democlient.New(democlient.Config{
		ClientID:      testClientID,
		RedirectURI:   clientServer.URL + democlient.RouteProcess,
		AuthServerURL: authTS.URL,
	})
	return clientServer.URL
}

func decodeToken(t *testing.T, res *http.Response) tokenView {
	t.Helper()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var tok tokenView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&tok))
	return tok
}

func TestFullRedirectFlow(t *testing.T) {
	clientURL := startFlow(t)

	// follows client -> authorize -> /process
	res, err := http.Get(clientURL + democlient.RouteHome)
	require.NoError(t, err)
	tok := decodeToken(t, res)
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)
	require.NotEmpty(t, tok.RefreshToken)

	res, err = http.PostForm(clientURL+democlient.RouteRefresh, url.Values{"refresh_token": {tok.RefreshToken}})
	require.NoError(t, err)
	refreshed := decodeToken(t, res)
	require.NotEqual(t, tok.RefreshToken, refreshed.RefreshToken)
}

func TestProcess_Rejections(t *testing.T) {
	clientURL := startFlow(t)

	tests := []struct {
		name    string
		query   string
		status  int
		message string
	}{
		{"error from server", "error=access_denied&error_description=nope", http.StatusBadRequest, "Authorization failed: access_denied - nope"},
		{"missing code", "state=abc", http.StatusBadRequest, "Missing code or state parameter"},
		{"unknown state", "state=abc&code=def", http.StatusBadRequest, "Invalid state parameter"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := http.Get(clientURL + democlient.RouteProcess + "?" + tc.query)
			require.NoError(t, err)
			defer res.Body.Close()

			require.Equal(t, tc.status, res.StatusCode)
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			require.Contains(t, string(body), tc.message)
		})
	}
}

func TestProcess_BadCode(t *testing.T) {
	clientURL := startFlow(t)

	noRedirect := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	res, err := noRedirect.Get(clientURL + democlient.RouteHome)
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusFound, res.StatusCode)

	authURL, err := url.Parse(res.Header.Get("Location"))
	require.NoError(t, err)
	state := authURL.Query().Get("state")
	require.NotEmpty(t, state)

	res, err = http.Get(clientURL + democlient.RouteProcess + "?state=" + url.QueryEscape(state) + "&code=forged")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusBadGateway, res.StatusCode)
}

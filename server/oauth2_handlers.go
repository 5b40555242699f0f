package server

import (
	"encoding/json"
	"net/http"

	autherrors "github.com/jrsteele09/go-stateless-auth-server/internal/errors"
	"github.com/jrsteele09/go-stateless-auth-server/metrics"
	"github.com/jrsteele09/go-stateless-auth-server/oauth2"
	"github.com/jrsteele09/go-stateless-auth-server/oauthmodel"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Authorize validates the authorization request and redirects the user-agent
// back to the client with a code
func (s *Server) Authorize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parseAuthorizationParameters(r)

		redirect := func(location string) {
			http.Redirect(w, r, location, http.StatusFound)
		}

		if err := s.auth.Authorize(params, redirect); err != nil {
			var oauthErr *oauthmodel.Error
			if autherrors.As(err, &oauthErr) {
				metrics.AuthorizeRequests.WithLabelValues(oauthErr.Code).Inc()
				log.Info().Str("error", oauthErr.Code).Str("client_id", params.ClientID).Msg("authorization request rejected")
				http.Error(w, "Authorization failed: "+oauthErr.Message, http.StatusBadRequest)
				return
			}
			metrics.AuthorizeRequests.WithLabelValues("server_error").Inc()
			log.Error().Err(err).Msg("authorization failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		metrics.AuthorizeRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}
}

// Token exchanges an authorization code or refresh token for a token pair
func (s *Server) Token() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSONError(w, "invalid_request", "failed to parse form data", http.StatusBadRequest)
			return
		}

		tokenReq := oauthmodel.TokenRequest{
			GrantType:    oauth2.GrantType(r.PostFormValue("grant_type")),
			ClientID:     r.PostFormValue("client_id"),
			RedirectURI:  r.PostFormValue("redirect_uri"),
			Code:         r.PostFormValue("code"),
			RefreshToken: r.PostFormValue("refresh_token"),
		}
		grantLabel := metrics.GrantTypeLabel(string(tokenReq.GrantType))

		tokenResponse, err := s.auth.Token(r.Context(), tokenReq)
		if err != nil {
			var oauthErr *oauthmodel.Error
			if autherrors.As(err, &oauthErr) {
				metrics.TokenRequests.WithLabelValues(grantLabel, oauthErr.Code).Inc()
				log.Info().Str("error", oauthErr.Code).Str("grant_type", grantLabel).Msg("token request rejected")
				writeJSONError(w, oauthErr.Code, oauthErr.Message, http.StatusBadRequest)
				return
			}
			metrics.TokenRequests.WithLabelValues(grantLabel, "server_error").Inc()
			log.Error().Err(err).Str("grant_type", grantLabel).Msg("token request failed")
			writeJSONError(w, "server_error", "internal server error", http.StatusInternalServerError)
			return
		}
		metrics.TokenRequests.WithLabelValues(grantLabel, metrics.OutcomeSuccess).Inc()

		w.Header().Set("Content-Type", contentTypeJSON)
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		_ = json.NewEncoder(w).Encode(tokenResponse)
	}
}

// parseAuthorizationParameters extracts OAuth2 authorization parameters from the query string
func parseAuthorizationParameters(r *http.Request) *oauthmodel.AuthorizationParameters {
	query := r.URL.Query()
	return &oauthmodel.AuthorizationParameters{
		ResponseType: oauth2.ResponseType(query.Get("response_type")),
		ClientID:     query.Get("client_id"),
		RedirectURI:  query.Get("redirect_uri"),
		State:        query.Get("state"),
	}
}

// writeJSONError writes an OAuth2 error response
func writeJSONError(w http.ResponseWriter, errorCode, description string, statusCode int) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(oauth2.ErrorResponse{
		Error:            errorCode,
		ErrorDescription: description,
	})
}

package server

// Route path constants
const (
	RouteOAuthAuthorize = "/oauth/authorize"
	RouteOAuthToken     = "/oauth/token"
	RouteHealth         = "/healthz"
	RouteMetrics        = "/metrics"
)

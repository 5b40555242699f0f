package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	portEnvVar          = "PORT"
	appNameVar          = "APP_NAME"
	envVar              = "ENV"
	logLevelVar         = "LOG_LEVEL"
	redisAddrVar        = "REDIS_ADDR"
	authServerURLVar    = "AUTH_SERVER_URL"
	clientPortVar       = "CLIENT_PORT"
	defaultEnvironment  = "DEV"
	defaultPort         = "8080"
	defaultClientPort   = "8081"
	defaultAuthServer   = "http://localhost:8080"
	defaultApplication  = "Go OAuth Server"
	defaultLoggingLevel = "info"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetPort returns the listen address of the authorization server, e.g. ":8080"
func (EnvVars) GetPort() string {
	return listenAddr(GetEnv(portEnvVar, defaultPort))
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, defaultApplication)
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, defaultEnvironment)
}

func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, defaultLoggingLevel))
}

// GetRedisAddr returns the host:port of the Redis instance used to track redeemed
// authorization codes. Empty means codes are tracked in memory.
func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "")
}

// GetAuthServerURL is the base URL the demo client uses to reach this server
func (EnvVars) GetAuthServerURL() string {
	return strings.TrimSuffix(GetEnv(authServerURLVar, defaultAuthServer), "/")
}

func (EnvVars) GetClientPort() string {
	return listenAddr(GetEnv(clientPortVar, defaultClientPort))
}

func listenAddr(port string) string {
	if port != "" && port[0] != ':' {
		port = ":" + port
	}
	return port
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvBool parses a boolean env var, falling back to defaultValue when unset or unparsable
func GetEnvBool(envVar string, defaultValue bool) bool {
	value, err := strconv.ParseBool(GetEnv(envVar, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetEnvInt parses an integer env var, falling back to defaultValue when unset or unparsable
func GetEnvInt(envVar string, defaultValue int) int {
	value, err := strconv.Atoi(GetEnv(envVar, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}

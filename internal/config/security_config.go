package config

const (
	singleUseCodesVar   = "SINGLE_USE_CODES"
	rateLimitEnabledVar = "RATE_LIMIT_ENABLED"
	rateLimitRPSVar     = "RATE_LIMIT_RPS"
	rateLimitBurstVar   = "RATE_LIMIT_BURST"
)

type SecurityConfig interface {
	GetSingleUseCodes() bool
	GetEnableRateLimiting() bool
	GetRateLimitRPS() int
	GetRateLimitBurst() int
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetSingleUseCodes reports whether redeemed authorization codes are remembered
// until they expire so that a replay is rejected.
func (Security) GetSingleUseCodes() bool {
	return GetEnvBool(singleUseCodesVar, true)
}

func (Security) GetEnableRateLimiting() bool {
	return GetEnvBool(rateLimitEnabledVar, false)
}

func (Security) GetRateLimitRPS() int {
	return GetEnvInt(rateLimitRPSVar, 10)
}

func (Security) GetRateLimitBurst() int {
	return GetEnvInt(rateLimitBurstVar, 20)
}

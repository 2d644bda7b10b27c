package config

import "strconv"

type PortalConfig interface {
	GetPortalURL() string
	GetRefererFallback() string
	GetTokenExpirationMinutes() int
	GetLoginRatePerMinute() float64
	GetLoginBurst() int
}

type Portal struct{}

var _ PortalConfig = Portal{}

// GetPortalURL returns the ArcGIS Enterprise portal base URL, without a
// trailing slash and without the /sharing/rest suffix.
func (Portal) GetPortalURL() string {
	return GetEnv("PORTAL_URL", "https://gh.space.gov.rw/portal")
}

// GetRefererFallback is used as the generateToken referer when the incoming
// request carries neither an Origin nor a Referer header.
func (Portal) GetRefererFallback() string {
	return GetEnv("APP_URL", "http://localhost:8080")
}

// GetTokenExpirationMinutes is the lifetime requested from generateToken.
// Defaults to 24 hours so field users are not logged out mid-shift.
func (Portal) GetTokenExpirationMinutes() int {
	return getIntEnv("TOKEN_EXPIRATION_MINUTES", 1440)
}

func (Portal) GetLoginRatePerMinute() float64 {
	return float64(getIntEnv("LOGIN_RATE_PER_MINUTE", 10))
}

func (Portal) GetLoginBurst() int {
	return getIntEnv("LOGIN_BURST", 5)
}

func getIntEnv(envVar string, defaultValue int) int {
	value, err := strconv.Atoi(GetEnv(envVar, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

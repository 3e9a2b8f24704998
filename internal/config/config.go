package config

import (
	"pytick/internal/errors"
)

// Default locations for the credentials file. creds.env may live in the
// working directory or one directory up; both spots are checked in order.
const (
	DefaultCredsFile   = "creds.env"
	FallbackCredsFile  = "../creds.env"
	DefaultServiceHost = "www.tickspot.com"
)

// Credentials holds everything needed to talk to the Tickspot API.
// It is built once at startup and passed by parameter; nothing reads the
// environment after Load returns.
type Credentials struct {
	SubscriptionID string
	Token          string
	UserAgent      string
	UserID         string
	Email          string
	Accessword     string
}

// Validate checks that the required credentials are present. A missing
// required key aborts the process rather than producing an unusable client.
func (c *Credentials) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"subscriptionID", c.SubscriptionID},
		{"token", c.Token},
		{"userAgent", c.UserAgent},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.NewConfigError(r.key, "required but not set")
		}
	}
	return nil
}

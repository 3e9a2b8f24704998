package config

import (
	"os"

	"github.com/joho/godotenv"

	"pytick/internal/logging"
)

// Loader handles loading credentials from multiple sources
type Loader struct {
	// Path to the credentials file. Empty means try the default locations.
	CredsFile string
}

// NewLoader creates a new credentials loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads credentials using the cascading strategy:
// 1. Values from the creds.env dotenv file, if one exists
// 2. Overridden by process environment variables
// 3. Validated; a missing required credential is an error
func (l *Loader) Load() (*Credentials, error) {
	fileVals := l.readCredsFile()

	creds := &Credentials{
		SubscriptionID: pick("subscriptionID", fileVals),
		Token:          pick("token", fileVals),
		UserAgent:      pick("userAgent", fileVals),
		UserID:         pick("userID", fileVals),
		Email:          pick("email", fileVals),
		Accessword:     pick("accessword", fileVals),
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// readCredsFile reads the dotenv credentials file without mutating the
// process environment. A missing file is not an error; the environment may
// carry everything.
func (l *Loader) readCredsFile() map[string]string {
	candidates := []string{l.CredsFile}
	if l.CredsFile == "" {
		candidates = []string{DefaultCredsFile, FallbackCredsFile}
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		vals, err := godotenv.Read(path)
		if err != nil {
			logging.Debugf("credentials file %s not readable: %v\n", path, err)
			continue
		}
		logging.Debugf("loaded credentials from %s\n", path)
		return vals
	}
	return nil
}

// pick returns the environment value for key, falling back to the dotenv
// file value. The environment wins so a credential can be overridden per
// invocation.
func pick(key string, fileVals map[string]string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fileVals[key]
}

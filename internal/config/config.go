package config

import (
	"fmt"
	"os"
)

// Credentials holds the Reddit API identity for one run. Loaded once at
// startup and passed by reference; values are never logged.
type Credentials struct {
	ClientID     string
	ClientSecret string
	// Username and Password are optional: script apps using the password
	// grant set them, installed apps leave them empty.
	Username  string
	Password  string
	UserAgent string
	// Mode selects the collector implementation (api, public, mock).
	// Empty means api.
	Mode string
}

// Load reads credentials from the environment. Missing required variables
// produce an error before any network call is attempted.
func Load() (*Credentials, error) {
	c := &Credentials{
		ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		Username:     os.Getenv("REDDIT_USERNAME"),
		Password:     os.Getenv("REDDIT_PASSWORD"),
		UserAgent:    os.Getenv("REDDIT_USER_AGENT"),
		Mode:         os.Getenv("COLLECTOR_MODE"),
	}

	for _, v := range []struct{ name, value string }{
		{"REDDIT_CLIENT_ID", c.ClientID},
		{"REDDIT_CLIENT_SECRET", c.ClientSecret},
		{"REDDIT_USER_AGENT", c.UserAgent},
	} {
		if v.value == "" {
			return nil, fmt.Errorf("missing %s (set it in the environment or a .env file)", v.name)
		}
	}

	return c, nil
}

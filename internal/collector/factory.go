package collector

import (
	"fmt"

	"github.com/mquintal/reddiscover/internal/config"
	"github.com/mquintal/reddiscover/internal/domain"
)

// New selects the collector implementation from the loaded credentials.
// An empty mode means the authenticated API client.
func New(cfg *config.Credentials) (domain.Collector, error) {
	switch cfg.Mode {
	case "", "api":
		return NewAPIClient(cfg.ClientID, cfg.ClientSecret, cfg.Username, cfg.Password, cfg.UserAgent)
	case "public":
		return NewPublicClient(cfg.UserAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'api', 'public', or 'mock')", cfg.Mode)
	}
}

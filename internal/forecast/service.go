package forecast

import (
	"net/http"

	"github.com/mmcdole/gofeed"

	"surfshop-backend/config"
)

// Service fetches beach condition data from the configured upstreams. Every
// endpoint degrades to a static estimate when its upstream is unconfigured
// or unreachable, so the storefront always has something to render.
type Service struct {
	cfg    config.ForecastConfig
	client *http.Client
	feed   *gofeed.Parser
}

// NewService creates a forecast service from the configuration.
func NewService(cfg config.ForecastConfig) *Service {
	client := &http.Client{Timeout: cfg.Timeout}
	feed := gofeed.NewParser()
	feed.Client = client

	return &Service{
		cfg:    cfg,
		client: client,
		feed:   feed,
	}
}

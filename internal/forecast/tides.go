package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// TideEntry is one high or low tide of the day.
type TideEntry struct {
	Type   string `json:"type"`
	Time   string `json:"time"`
	Height string `json:"height"`
}

// TideTable is the static fallback tide payload.
type TideTable struct {
	Location string      `json:"location"`
	Tides    []TideEntry `json:"tides"`
	Source   string      `json:"source"`
}

// Tides returns the tide table from the configured upstream, passed through
// as-is, or the static fallback when the upstream is unconfigured or down.
func (s *Service) Tides(ctx context.Context) any {
	if s.cfg.TidesURL == "" {
		return fallbackTides()
	}

	data, err := s.fetchTides(ctx)
	if err != nil {
		log.Printf("tides upstream failed, serving estimate: %v", err)
		return fallbackTides()
	}
	return data
}

func (s *Service) fetchTides(ctx context.Context) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.TidesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build tides request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tides request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tides upstream returned status %d", resp.StatusCode)
	}

	var data any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode tides response: %w", err)
	}
	return data, nil
}

func fallbackTides() TideTable {
	return TideTable{
		Location: "Tabatinga, PB",
		Tides: []TideEntry{
			{Type: "alta", Time: "06:30", Height: "2.3m"},
			{Type: "baixa", Time: "12:45", Height: "0.5m"},
			{Type: "alta", Time: "18:50", Height: "2.1m"},
		},
		Source: "estimado",
	}
}

package forecast

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfshop-backend/config"
)

func TestCompassDirection(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{112, "ESE"},
		{180, "S"},
		{270, "W"},
		{350, "N"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, compassDirection(tc.deg), "deg %v", tc.deg)
	}
}

func TestWeather_NoAPIKeyServesEstimate(t *testing.T) {
	s := NewService(config.ForecastConfig{Timeout: time.Second})

	report := s.Weather(context.Background())
	assert.Equal(t, "estimado", report.Source)
}

func TestWeather_Upstream(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "pt_br", q.Get("lang"))
		assert.Equal(t, "-7.1195", q.Get("lat"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"main": {"temp": 27.4, "feels_like": 29.1, "temp_min": 26.0, "temp_max": 30.2, "humidity": 74, "pressure": 1013},
			"weather": [{"description": "céu limpo"}],
			"wind": {"speed": 5.0, "deg": 112},
			"rain": {"1h": 0.3}
		}`)
	}))
	defer ts.Close()

	s := NewService(config.ForecastConfig{
		Timeout: time.Second,
		Weather: config.WeatherConfig{
			APIKey:    "test-key",
			URL:       ts.URL,
			Latitude:  -7.1195,
			Longitude: -34.8450,
			Lang:      "pt_br",
		},
	})

	report := s.Weather(context.Background())
	assert.Equal(t, "openweathermap", report.Source)
	assert.Equal(t, 27.4, report.Temp)
	assert.Equal(t, "céu limpo", report.Description)
	// 5 m/s rounds to 18 km/h.
	assert.Equal(t, 18, report.WindSpeed)
	assert.Equal(t, "ESE", report.WindDirection)
	assert.Equal(t, 0.3, report.RainMM)
}

func TestWeather_UpstreamFailureServesEstimate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := NewService(config.ForecastConfig{
		Timeout: time.Second,
		Weather: config.WeatherConfig{APIKey: "test-key", URL: ts.URL},
	})

	report := s.Weather(context.Background())
	assert.Equal(t, "estimado", report.Source)
}

func TestWavesAt(t *testing.T) {
	morning := WavesAt(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC))
	assert.Equal(t, 1.5, morning.WaveHeight)
	assert.Equal(t, 2.0, morning.WaveHeightMax)
	assert.Equal(t, "Bom", morning.SurfRating)

	evening := WavesAt(time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, 0.9, evening.WaveHeight)
	assert.Equal(t, "Pequeno", evening.SurfRating)
}

func TestTides_Passthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"station": "60245", "extremes": [{"height": 2.3}]}`)
	}))
	defer ts.Close()

	s := NewService(config.ForecastConfig{Timeout: time.Second, TidesURL: ts.URL})

	data := s.Tides(context.Background())
	payload, ok := data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "60245", payload["station"])
}

func TestTides_FallbackWhenUnconfigured(t *testing.T) {
	s := NewService(config.ForecastConfig{Timeout: time.Second})

	data := s.Tides(context.Background())
	table, ok := data.(TideTable)
	require.True(t, ok)
	assert.Equal(t, "estimado", table.Source)
	assert.Len(t, table.Tides, 3)
}

func TestNews(t *testing.T) {
	longSummary := strings.Repeat("onda ", 60)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Surf News</title>`)
		for i := 1; i <= 7; i++ {
			fmt.Fprintf(w, `<item>
				<title>Notícia %d</title>
				<link>https://example.com/news/%d</link>
				<pubDate>Mon, 13 Jan 2025 08:00:00 GMT</pubDate>
				<description>%s</description>
			</item>`, i, i, longSummary)
		}
		fmt.Fprint(w, `</channel></rss>`)
	}))
	defer ts.Close()

	s := NewService(config.ForecastConfig{Timeout: time.Second, NewsFeedURL: ts.URL})

	items, err := s.News(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Notícia 1", items[0].Title)
	assert.Equal(t, "https://example.com/news/1", items[0].Link)
	assert.LessOrEqual(t, len([]rune(items[0].Summary)), 200)
}

func TestNews_UnconfiguredFeed(t *testing.T) {
	s := NewService(config.ForecastConfig{Timeout: time.Second})

	items, err := s.News(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfshop-backend/internal/forecast"
)

// With no upstreams configured every forecast endpoint serves its static
// estimate instead of erroring.
func TestForecastEndpoints_Fallbacks(t *testing.T) {
	router, _, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/weather", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var weather forecast.WeatherReport
	decodeBody(t, w, &weather)
	assert.Equal(t, "estimado", weather.Source)
	assert.NotZero(t, weather.Temp)

	w = doJSON(t, router, http.MethodGet, "/api/waves", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var waves forecast.WaveReport
	decodeBody(t, w, &waves)
	assert.Equal(t, "estimado", waves.Source)
	assert.Positive(t, waves.WaveHeight)

	w = doJSON(t, router, http.MethodGet, "/api/tides", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var tides forecast.TideTable
	decodeBody(t, w, &tides)
	assert.Equal(t, "estimado", tides.Source)
	assert.Len(t, tides.Tides, 3)

	w = doJSON(t, router, http.MethodGet, "/api/news", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var news []forecast.NewsItem
	decodeBody(t, w, &news)
	assert.Empty(t, news)
}

package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// WeatherReport is the flattened weather payload served to the storefront.
type WeatherReport struct {
	Temp          float64 `json:"temp"`
	FeelsLike     float64 `json:"feels_like"`
	TempMin       float64 `json:"temp_min"`
	TempMax       float64 `json:"temp_max"`
	Description   string  `json:"description"`
	Humidity      int     `json:"humidity"`
	WindSpeed     int     `json:"wind_speed"` // km/h
	WindDirection string  `json:"wind_direction"`
	Pressure      int     `json:"pressure"`
	RainChance    int     `json:"rain_chance"`
	RainMM        float64 `json:"rain_mm"`
	UVIndex       int     `json:"uv_index"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	Source        string  `json:"source"`
}

// openWeatherResponse models the subset of the OpenWeather payload we read.
type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Rain struct {
		OneH float64 `json:"1h"`
	} `json:"rain"`
}

var compassDirections = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// compassDirection converts wind degrees to a 16-point compass label.
func compassDirection(deg float64) string {
	idx := int(math.Mod(deg+11.25, 360) / 22.5)
	return compassDirections[idx%16]
}

// Weather returns the current conditions from OpenWeather, or the static
// estimate when no API key is configured or the upstream call fails.
func (s *Service) Weather(ctx context.Context) WeatherReport {
	if s.cfg.Weather.APIKey == "" {
		return fallbackWeather()
	}

	report, err := s.fetchWeather(ctx)
	if err != nil {
		log.Printf("weather upstream failed, serving estimate: %v", err)
		return fallbackWeather()
	}
	return report
}

func (s *Service) fetchWeather(ctx context.Context) (WeatherReport, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(s.cfg.Weather.Latitude, 'f', 4, 64))
	q.Set("lon", strconv.FormatFloat(s.cfg.Weather.Longitude, 'f', 4, 64))
	q.Set("appid", s.cfg.Weather.APIKey)
	q.Set("units", "metric")
	q.Set("lang", s.cfg.Weather.Lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Weather.URL+"?"+q.Encode(), nil)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherReport{}, fmt.Errorf("weather upstream returned status %d", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return WeatherReport{}, fmt.Errorf("decode weather response: %w", err)
	}

	description := ""
	if len(data.Weather) > 0 {
		description = data.Weather[0].Description
	}

	return WeatherReport{
		Temp:          data.Main.Temp,
		FeelsLike:     data.Main.FeelsLike,
		TempMin:       data.Main.TempMin,
		TempMax:       data.Main.TempMax,
		Description:   description,
		Humidity:      data.Main.Humidity,
		WindSpeed:     int(math.Round(data.Wind.Speed * 3.6)),
		WindDirection: compassDirection(data.Wind.Deg),
		Pressure:      data.Main.Pressure,
		RainChance:    0,
		RainMM:        data.Rain.OneH,
		UVIndex:       8,
		Sunrise:       "05:18",
		Sunset:        "17:45",
		Source:        "openweathermap",
	}, nil
}

// fallbackWeather is the static estimate for a typical day at the beach.
func fallbackWeather() WeatherReport {
	return WeatherReport{
		Temp:          26,
		FeelsLike:     28,
		TempMin:       25,
		TempMax:       30,
		Description:   "Sol com muitas nuvens",
		Humidity:      78,
		WindSpeed:     11,
		WindDirection: "ESE",
		Pressure:      1012,
		RainChance:    35,
		RainMM:        1.5,
		UVIndex:       8,
		Sunrise:       "05:18",
		Sunset:        "17:45",
		Source:        "estimado",
	}
}

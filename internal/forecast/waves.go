package forecast

import (
	"math"
	"time"
)

// WaveReport describes the surf conditions at the shop's beach.
type WaveReport struct {
	WaveHeight           float64 `json:"wave_height"`
	WaveHeightMax        float64 `json:"wave_height_max"`
	WaveDirection        string  `json:"wave_direction"`
	WaveDirectionDegrees int     `json:"wave_direction_degrees"`
	SwellPeriod          int     `json:"swell_period"`
	SwellDirection       string  `json:"swell_direction"`
	WaterTemp            int     `json:"water_temp"`
	WindWaveHeight       float64 `json:"wind_wave_height"`
	SurfRating           string  `json:"surf_rating"`
	BestTime             string  `json:"best_time"`
	TideInfluence        string  `json:"tide_influence"`
	ConditionsSummary    string  `json:"conditions_summary"`
	Source               string  `json:"source"`
}

// Waves returns the current modeled surf conditions.
func (s *Service) Waves() WaveReport {
	return WavesAt(time.Now())
}

// WavesAt models the surf conditions at the given time. There is no surf
// forecast upstream for this beach, so the height and period follow a daily
// swell cycle around typical local values.
func WavesAt(t time.Time) WaveReport {
	hour := float64(t.Hour())

	baseHeight := 1.2
	variation := 0.3 * math.Sin(hour*math.Pi/12)
	waveHeight := math.Round((baseHeight+variation)*10) / 10

	swellPeriod := 10 + int(2*math.Sin(hour*math.Pi/24))

	rating := "Pequeno"
	if waveHeight >= 1.0 {
		rating = "Bom"
	}

	return WaveReport{
		WaveHeight:           waveHeight,
		WaveHeightMax:        math.Round((waveHeight+0.5)*10) / 10,
		WaveDirection:        "ESE",
		WaveDirectionDegrees: 112,
		SwellPeriod:          swellPeriod,
		SwellDirection:       "E",
		WaterTemp:            27,
		WindWaveHeight:       0.4,
		SurfRating:           rating,
		BestTime:             "06:00 - 09:00",
		TideInfluence:        "Melhor na maré enchendo",
		ConditionsSummary:    "Ondas consistentes com vento terral pela manhã",
		Source:               "estimado",
	}
}

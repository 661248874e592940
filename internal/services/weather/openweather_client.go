package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/skyweather/internal/models"
)

const (
	currentEndpoint  = "weather"
	forecastEndpoint = "forecast"

	units           = "metric"
	forecastDays    = 5
	forecastTimeTxt = "12:00:00"
	dtTxtLayout     = "2006-01-02 15:04:05"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Icon string `json:"icon"`
		} `json:"weather"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
}

// ClientOpenWeatherMap fetches current conditions and the 5-day/3-hour
// forecast from OpenWeatherMap.
type ClientOpenWeatherMap struct {
	APIKey string
	apiURL string
	client HTTPClient
	logger zerolog.Logger
}

// NewClientOpenWeatherMap constructs a new OpenWeatherMap client. apiURL is the
// API root, e.g. https://api.openweathermap.org/data/2.5.
func NewClientOpenWeatherMap(apiKey, apiURL string,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{
		APIKey: apiKey,
		apiURL: strings.TrimRight(apiURL, "/"),
		client: httpClient,
		logger: logger,
	}
}

// Fetch issues the current-conditions request and, only if it succeeds, the
// forecast request. Both payloads must parse before a report is returned.
func (s *ClientOpenWeatherMap) Fetch(ctx context.Context, city string) (models.Report, error) {
	start := time.Now()

	var current currentResponse
	status, err := s.get(ctx, currentEndpoint, city, &current)
	if err != nil {
		return models.Report{}, err
	}
	if status != http.StatusOK {
		s.logger.Warn().
			Ctx(ctx).
			Str("city", city).
			Int("status", status).
			Msg("OpenWeatherMap current conditions returned non-200 status")
		return models.Report{}, &FetchError{
			Kind: KindNotFound,
			Op:   currentEndpoint,
			Err:  fmt.Errorf("status %d", status),
		}
	}
	if len(current.Weather) == 0 {
		return models.Report{}, &FetchError{
			Kind: KindParse,
			Op:   currentEndpoint,
			Err:  fmt.Errorf("empty weather list"),
		}
	}

	var forecast forecastResponse
	status, err = s.get(ctx, forecastEndpoint, city, &forecast)
	if err != nil {
		return models.Report{}, err
	}
	if status != http.StatusOK {
		s.logger.Warn().
			Ctx(ctx).
			Str("city", city).
			Int("status", status).
			Msg("OpenWeatherMap forecast returned non-200 status")
		return models.Report{}, &FetchError{
			Kind: KindProvider,
			Op:   forecastEndpoint,
			Err:  fmt.Errorf("status %d", status),
		}
	}

	report := models.Report{
		Current:  toConditions(current),
		Forecast: noonEntries(forecast),
	}

	s.logger.Info().
		Ctx(ctx).
		Str("city", city).
		Int("forecast_days", len(report.Forecast)).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched weather data")

	return report, nil
}

// get performs one GET and decodes a 200 body into target. It returns the
// status code; transport and decode failures come back as FetchError.
func (s *ClientOpenWeatherMap) get(ctx context.Context, endpoint, city string, target any) (int, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("units", units)
	query.Set("appid", s.APIKey)
	reqURL := fmt.Sprintf("%s/%s?%s", s.apiURL, endpoint, query.Encode())

	s.logger.Debug().
		Ctx(ctx).
		Str("city", city).
		Str("endpoint", endpoint).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, &FetchError{Kind: KindTransport, Op: endpoint, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Str("endpoint", endpoint).
			Msg("error sending HTTP request to OpenWeatherMap")
		return 0, &FetchError{Kind: KindTransport, Op: endpoint, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Str("city", city).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("city", city).
			Str("endpoint", endpoint).
			Msg("failed to decode OpenWeatherMap response")
		return resp.StatusCode, &FetchError{Kind: KindParse, Op: endpoint, Err: err}
	}
	return resp.StatusCode, nil
}

func toConditions(raw currentResponse) models.CurrentConditions {
	w := raw.Weather[0]
	return models.CurrentConditions{
		Location:    raw.Name,
		Country:     raw.Sys.Country,
		Temperature: raw.Main.Temp,
		Category:    models.Category(w.Main),
		Description: w.Description,
		Icon:        w.Icon,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Sunrise:     time.Unix(raw.Sys.Sunrise, 0).UTC(),
		Sunset:      time.Unix(raw.Sys.Sunset, 0).UTC(),
	}
}

// noonEntries keeps the 12:00 slot of each day, oldest first, at most five.
func noonEntries(raw forecastResponse) []models.ForecastEntry {
	entries := make([]models.ForecastEntry, 0, forecastDays)
	for _, item := range raw.List {
		if !strings.HasSuffix(item.DtTxt, forecastTimeTxt) {
			continue
		}
		ts, err := time.Parse(dtTxtLayout, item.DtTxt)
		if err != nil {
			ts = time.Unix(item.Dt, 0).UTC()
		}
		icon := ""
		if len(item.Weather) > 0 {
			icon = item.Weather[0].Icon
		}
		entries = append(entries, models.ForecastEntry{
			Time:        ts,
			Temperature: item.Main.Temp,
			Icon:        icon,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
	if len(entries) > forecastDays {
		entries = entries[:forecastDays]
	}
	return entries
}

package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/skyweather/internal/app"
	"github.com/Nazarious-ucu/skyweather/internal/config"
	"github.com/Nazarious-ucu/skyweather/internal/surface"
)

const (
	parisCurrent = `{
	  "name": "Paris",
	  "main": {"temp": 15.4, "humidity": 80},
	  "weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
	  "wind": {"speed": 3},
	  "sys": {"country": "FR", "sunrise": 1700000000, "sunset": 1700030000}
	}`

	parisForecast = `{
	  "list": [
	    {"dt": 1700136000, "dt_txt": "2023-11-16 12:00:00", "main": {"temp": 11.5}, "weather": [{"icon": "10d"}]},
	    {"dt": 1700222400, "dt_txt": "2023-11-17 12:00:00", "main": {"temp": 10.2}, "weather": [{"icon": "03d"}]}
	  ]
	}`
)

type widgetResponse struct {
	Error  string           `json:"error"`
	Widget surface.Snapshot `json:"widget"`
}

func newProvider(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("q") != "Paris" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/weather"):
			_, _ = w.Write([]byte(parisCurrent))
		case strings.HasSuffix(r.URL.Path, "/forecast"):
			_, _ = w.Write([]byte(parisForecast))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newContainer(t *testing.T, staticDir string) app.ServiceContainer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	provider := newProvider(t)

	cfg := config.Config{
		OpenWeatherMapAPIKey: "test-key",
		OpenWeatherMapURL:    provider.URL + "/data/2.5",
		IconBaseURL:          "https://openweathermap.org/img/wn",
		Server: config.Server{
			Host:          "127.0.0.1",
			Port:          "0",
			ReadTimeout:   5,
			SearchTimeout: 5 * time.Second,
		},
		Breaker: config.Breaker{
			TimeInterval: 30,
			TimeTimeOut:  10,
			RepeatNumber: 5,
		},
		AudioAssetsDir:  "effects",
		DisplayTimezone: "UTC",
		StaticDir:       staticDir,
		HTTPLogsPath:    filepath.Join(t.TempDir(), "log", "http.log"),
	}

	a := app.New(cfg, zerolog.Nop())
	c, err := a.Init()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Shutdown(c)
	})
	return c
}

func do(t *testing.T, c app.ServiceContainer, method, target string) (*httptest.ResponseRecorder, widgetResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var resp widgetResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func Test_App_SearchEndToEnd(t *testing.T) {
	c := newContainer(t, "")

	rec, resp := do(t, c, http.MethodPost, "/api/search?city=Paris")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	snap := resp.Widget
	assert.Empty(t, resp.Error)
	assert.Equal(t, "Paris, FR", snap.Headline.Location)
	assert.Equal(t, "15°C", snap.Headline.Temperature)
	assert.Equal(t, "light rain", snap.Headline.Description)
	assert.Equal(t, "10:13:20 PM", snap.Metrics.Sunrise)
	assert.Len(t, snap.Forecast, 2)
	assert.Equal(t, surface.ThemeDay, snap.Theme)
	assert.InDelta(t, 85, snap.Effects.CloudAnimationSeconds, 1e-9)
	assert.Len(t, snap.Effects.Rain, 100)
	assert.Equal(t, "effects/rain.mp3", snap.Audio.Source)
	assert.False(t, snap.Audio.Paused)
	assert.Equal(t, surface.Control{Enabled: true, Label: "Search"}, snap.Search)

	rec, resp = do(t, c, http.MethodPost, "/api/search?city=paris")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "You already searched for this city.", resp.Error)
}

func Test_App_SearchNotFound(t *testing.T) {
	c := newContainer(t, "")

	rec, resp := do(t, c, http.MethodPost, "/api/search?city=Atlantis")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "City not found", resp.Error)
	assert.Equal(t, "City not found", resp.Widget.Error)
	assert.Empty(t, resp.Widget.Effects.Rain)
}

func Test_App_AudioLockedUntilGesture(t *testing.T) {
	c := newContainer(t, "")

	_, resp := do(t, c, http.MethodGet, "/api/widget")
	assert.True(t, resp.Widget.Audio.Paused)
	assert.False(t, c.Page.Activated())

	do(t, c, http.MethodPost, "/api/interaction")
	assert.True(t, c.Page.Activated())
}

func Test_App_Toggles(t *testing.T) {
	c := newContainer(t, "")

	_, resp := do(t, c, http.MethodPost, "/api/theme/toggle")
	assert.Equal(t, surface.ThemeNight, resp.Widget.Theme)

	_, resp = do(t, c, http.MethodPost, "/api/audio/toggle")
	assert.True(t, resp.Widget.Audio.Paused)
}

func Test_App_Metrics(t *testing.T) {
	c := newContainer(t, "")
	do(t, c, http.MethodPost, "/api/search?city=Paris")

	rec, _ := do(t, c, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `skyweather_searches_total{outcome="success"} 1`)
	assert.Contains(t, body, "skyweather_http_requests_total")
}

func Test_App_Static(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>widget</html>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "effects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "effects", "rain.mp3"), []byte("ID3"), 0o600))

	c := newContainer(t, dir)

	rec, _ := do(t, c, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "widget")

	rec, _ = do(t, c, http.MethodGet, "/effects/rain.mp3")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_App_HTTPLogRedactsKey(t *testing.T) {
	c := newContainer(t, "")
	do(t, c, http.MethodPost, "/api/search?city=Paris")

	raw, err := os.ReadFile(c.HTTPLogsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "/data/2.5/weather")
	assert.NotContains(t, string(raw), "test-key")
}

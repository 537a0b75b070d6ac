package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, s *server, form url.Values) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.skeletonHandler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestSkeletonHandler(t *testing.T) {
	s := &server{cfg: defaultConfig()}
	body := post(t, s, url.Values{
		"shape":    {"rectangle"},
		"vertices": {"4"},
		"size":     {"200"},
		"levels":   {"3"},
	})

	assert.Contains(t, body, `<option value="rectangle" selected>rectangle</option>`)
	assert.Contains(t, body, "Прямой скелет: ")
	assert.Contains(t, body, "Алгоритм завершен!")
	assert.Contains(t, body, `value="200"`)
	assert.NotContains(t, body, "Ошибка построения")
}

func TestSkeletonHandlerDefaults(t *testing.T) {
	s := &server{cfg: defaultConfig()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.skeletonHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="random" selected>random</option>`)
	assert.Contains(t, rec.Body.String(), "<h1>Логи</h1>")
}

func TestParamsIgnoresBadValues(t *testing.T) {
	s := &server{cfg: defaultConfig()}
	form := url.Values{"vertices": {"2"}, "size": {"-5"}, "levels": {"x"}, "shape": {"l"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	p := s.params(req)
	assert.Equal(t, formDefaults{Shape: "l", Vertices: 12, Size: 1000, Levels: 4}, p)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: :9090\ndefaults:\n  shape: comb\nskeleton:\n  max_steps: 500\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "comb", cfg.Defaults.Shape)
	assert.Equal(t, 12, cfg.Defaults.Vertices, "unset keys keep defaults")
	assert.Equal(t, 500, cfg.Skeleton.MaxSteps)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

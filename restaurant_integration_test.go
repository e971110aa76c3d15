package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/little-lemon/config"
	"github.com/yeremiapane/little-lemon/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Host:       "127.0.0.1",
		Port:       "0",
		MenuDBPath: filepath.Join(dir, "little_lemon.db"),
		Profile: config.ProfileConfig{
			Backend: config.ProfileBackendSQLite,
			DBPath:  filepath.Join(dir, "little_lemon_profile.db"),
		},
		Search:        config.SearchConfig{Debounce: 10 * time.Millisecond},
		UploadDir:     filepath.Join(dir, "avatars"),
		ShareBaseURL:  "http://127.0.0.1:8080",
		AllowedOrigin: "http://127.0.0.1:5500",
	}
}

// TestEndToEndIntegration menguji flow utama:
// 1. Onboarding (nama + email)
// 2. Filter menu
// 3. Simpan profil
// 4. Logout -> kembali ke onboarding
// 5. Restart di file yang sama -> seed tidak diulang, profil tetap kosong
func TestEndToEndIntegration(t *testing.T) {
	cfg := testConfig(t.TempDir())

	r, cleanup, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}

	onboardTest(t, r)
	filterMenuTest(t, r, "Pasta", "All", 1)
	filterMenuTest(t, r, "", "Desserts", 1)
	filterMenuTest(t, r, "zzz", "All", 0)
	saveProfileTest(t, r)
	logoutTest(t, r)
	cleanup()

	// Restart aplikasi di atas file database yang sama.
	r, cleanup, err = newApp(cfg)
	if err != nil {
		t.Fatalf("newApp after restart: %v", err)
	}
	defer cleanup()

	if code := call(t, r, http.MethodGet, "/menu", nil, nil); code != http.StatusForbidden {
		t.Fatalf("menu after logout+restart: code=%d, want 403", code)
	}
	onboardTest(t, r)
	filterMenuTest(t, r, "", "All", 5)
}

func TestEndToEndRedisProfileBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t.TempDir())
	cfg.Profile = config.ProfileConfig{
		Backend:     config.ProfileBackendRedis,
		RedisAddr:   mr.Addr(),
		RedisPrefix: "littlelemon:profile:",
	}

	r, cleanup, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	defer cleanup()

	onboardTest(t, r)
	if got, _ := mr.Get("littlelemon:profile:isOnboarded"); got != "true" {
		t.Fatalf("isOnboarded in redis = %q, want \"true\"", got)
	}
	logoutTest(t, r)
	if mr.Exists("littlelemon:profile:userFirstName") {
		t.Fatalf("userFirstName still in redis after logout")
	}
}

func TestNewAppFailsOnUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(t.TempDir())
	cfg.Profile = config.ProfileConfig{Backend: config.ProfileBackendRedis, RedisAddr: addr}

	if _, _, err := newApp(cfg); err == nil {
		t.Fatalf("expected error for unreachable redis")
	}
}

func call(t *testing.T, r *gin.Engine, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil {
		var resp struct {
			Status  bool            `json:"status"`
			Message string          `json:"message"`
			Data    json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s: bad body %s", method, path, w.Body.String())
		}
		if err := json.Unmarshal(resp.Data, out); err != nil {
			t.Fatalf("%s %s: bad data %s", method, path, string(resp.Data))
		}
	}
	return w.Code
}

func onboardTest(t *testing.T, r *gin.Engine) {
	t.Helper()
	code := call(t, r, http.MethodPost, "/onboarding", map[string]string{
		"first_name": "Ana",
		"email":      "ana@example.com",
	}, nil)
	if code != http.StatusCreated {
		t.Fatalf("onboarding: code=%d", code)
	}
}

func filterMenuTest(t *testing.T, r *gin.Engine, query, category string, want int) {
	t.Helper()
	var items []struct {
		Name string `json:"name"`
	}
	path := "/menu?q=" + query + "&category=" + category
	if code := call(t, r, http.MethodGet, path, nil, &items); code != http.StatusOK {
		t.Fatalf("GET %s: code=%d", path, code)
	}
	if len(items) != want {
		t.Fatalf("GET %s: got %d items, want %d", path, len(items), want)
	}
}

func saveProfileTest(t *testing.T, r *gin.Engine) {
	t.Helper()
	code := call(t, r, http.MethodPut, "/profile", map[string]interface{}{
		"first_name":      "Ana",
		"email":           "ana@example.com",
		"phone_number":    "555-0100",
		"discount_offers": true,
	}, nil)
	if code != http.StatusOK {
		t.Fatalf("save profile: code=%d", code)
	}

	var p struct {
		PhoneNumber    string `json:"phone_number"`
		DiscountOffers bool   `json:"discount_offers"`
	}
	call(t, r, http.MethodGet, "/profile", nil, &p)
	if p.PhoneNumber != "555-0100" || !p.DiscountOffers {
		t.Fatalf("profile not saved: %+v", p)
	}
}

func logoutTest(t *testing.T, r *gin.Engine) {
	t.Helper()
	if code := call(t, r, http.MethodPost, "/logout", nil, nil); code != http.StatusOK {
		t.Fatalf("logout: code=%d", code)
	}
	var status struct {
		Onboarded bool `json:"onboarded"`
	}
	call(t, r, http.MethodGet, "/onboarding", nil, &status)
	if status.Onboarded {
		t.Fatalf("still onboarded after logout")
	}
}

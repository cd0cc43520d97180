package config

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-role-key")
	t.Setenv("SUPABASE_KEY", "anon-key")
	t.Setenv("MEMBER_ID", "af000049855")
	t.Setenv("API_URL", "https://example.com/api/products")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	logger, _ := test.NewNullLogger()
	cfg := Load(logger)

	if cfg.SupabaseURL != "https://demo.supabase.co" {
		t.Errorf("SupabaseURL = %q", cfg.SupabaseURL)
	}
	if cfg.MemberID != "af000049855" {
		t.Errorf("MemberID = %q", cfg.MemberID)
	}
	if cfg.APIURL != "https://example.com/api/products" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
}

func TestStoreKeyPrefersServiceRole(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"both set", Config{ServiceRoleKey: "service", SupabaseKey: "anon"}, "service"},
		{"service role only", Config{ServiceRoleKey: "service"}, "service"},
		{"generic only", Config{SupabaseKey: "anon"}, "anon"},
		{"neither", Config{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.StoreKey(); got != tt.want {
				t.Errorf("StoreKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"url and key", Config{SupabaseURL: "https://x", SupabaseKey: "k"}, true},
		{"url only", Config{SupabaseURL: "https://x"}, false},
		{"key only", Config{SupabaseKey: "k"}, false},
		{"empty", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.StoreConfigured(); got != tt.want {
				t.Errorf("StoreConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequireSync(t *testing.T) {
	full := Config{
		SupabaseURL: "https://x",
		SupabaseKey: "k",
		MemberID:    "af1",
		APIURL:      "https://example.com/api",
	}
	if err := full.RequireSync(); err != nil {
		t.Errorf("complete config: unexpected error %v", err)
	}

	var empty Config
	err := empty.RequireSync()
	if err == nil {
		t.Fatal("empty config: expected an error")
	}
	for _, name := range []string{"SUPABASE_URL", "SUPABASE_KEY", "MEMBER_ID", "API_URL"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing variable %s", err, name)
		}
	}

	partial := Config{SupabaseURL: "https://x", SupabaseKey: "k", MemberID: "af1"}
	err = partial.RequireSync()
	if err == nil {
		t.Fatal("partial config: expected an error")
	}
	if !strings.Contains(err.Error(), "API_URL") {
		t.Errorf("error %q does not name API_URL", err)
	}
	if strings.Contains(err.Error(), "MEMBER_ID") {
		t.Errorf("error %q names MEMBER_ID, which is set", err)
	}
}

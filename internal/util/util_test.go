package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"example.com", true},
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"example.com:8080/health", true},
		{"localhost:6060", true},
		{"sub.domain.example.co.uk", true},
		{"", false},
		{"http://", false},
		{"ftp://example.com", false},
		{"not a url", false},
		{"https://exa mple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidURL(tt.input); got != tt.valid {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestGetClientIPAddress(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := GetClientIPAddress(r); got != "10.0.0.1:1234" {
		t.Errorf("got %q, want RemoteAddr", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := GetClientIPAddress(r); got != "203.0.113.9" {
		t.Errorf("got %q, want forwarded address", got)
	}
}

package util

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

func GetClientIPAddress(r *http.Request) string {
	if forwardedIP := r.Header.Get("X-Forwarded-For"); forwardedIP != "" {
		return forwardedIP
	}
	return r.RemoteAddr
}

var urlPattern = regexp.MustCompile(`^(https?://)?([a-zA-Z0-9.-]+)(:[0-9]+)?(/.*)?$`)

// IsValidURL is a cheap shape check on user input. The audit engine
// itself normalizes the URL and lets the fetch decide whether it is
// reachable.
func IsValidURL(input string) bool {
	if input == "" {
		return false
	}

	if !urlPattern.MatchString(input) {
		return false
	}

	// Parse scheme-less input the way the engine will normalize it;
	// url.Parse alone reads "example.com:8080/x" as scheme "example.com".
	candidate := input
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}

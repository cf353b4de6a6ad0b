package audit

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"seoaudit/internal/model"
)

// RegionProfile carries the simulated-locale request flavoring for one
// region code. This only varies outbound headers; it does not route
// traffic through the region in question.
type RegionProfile struct {
	AcceptLanguage string
	Headers        map[string]string
}

var defaultLocation = model.ServerLocation{
	Country:  "United States",
	Region:   "US",
	City:     "Unknown",
	Timezone: "America/New_York",
}

// ccTLD suffixes with a deterministic location record. Keyed by the last
// label of the effective TLD, so ".co.uk" resolves through "uk".
var tldLocations = map[string]model.ServerLocation{
	"ca": {Country: "Canada", Region: "CA", City: "Toronto", Timezone: "America/Toronto"},
	"uk": {Country: "United Kingdom", Region: "UK", City: "London", Timezone: "Europe/London"},
	"au": {Country: "Australia", Region: "AU", City: "Sydney", Timezone: "Australia/Sydney"},
	"de": {Country: "Germany", Region: "DE", City: "Frankfurt", Timezone: "Europe/Berlin"},
	"jp": {Country: "Japan", Region: "JP", City: "Tokyo", Timezone: "Asia/Tokyo"},
	"sg": {Country: "Singapore", Region: "SG", City: "Singapore", Timezone: "Asia/Singapore"},
	"in": {Country: "India", Region: "IN", City: "Mumbai", Timezone: "Asia/Kolkata"},
}

var countryNames = map[string]string{
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"UK": "United Kingdom",
	"AU": "Australia",
	"DE": "Germany",
	"JP": "Japan",
	"SG": "Singapore",
	"IN": "India",
	"FR": "France",
	"NL": "Netherlands",
	"BR": "Brazil",
}

var countryTimezones = map[string]string{
	"US": "America/New_York",
	"CA": "America/Toronto",
	"GB": "Europe/London",
	"UK": "Europe/London",
	"AU": "Australia/Sydney",
	"DE": "Europe/Berlin",
	"JP": "Asia/Tokyo",
	"SG": "Asia/Singapore",
	"IN": "Asia/Kolkata",
	"FR": "Europe/Paris",
	"NL": "Europe/Amsterdam",
	"BR": "America/Sao_Paulo",
}

// regionProfiles flavor the fetch per supported region code. The
// X-Forwarded-For addresses are representative, not real client routing.
var regionProfiles = map[string]RegionProfile{
	"US": {AcceptLanguage: "en-US,en;q=0.9", Headers: map[string]string{"CF-IPCountry": "US", "X-Forwarded-For": "23.235.32.1"}},
	"CA": {AcceptLanguage: "en-CA,en;q=0.9,fr-CA;q=0.8", Headers: map[string]string{"CF-IPCountry": "CA", "X-Forwarded-For": "192.99.0.1"}},
	"UK": {AcceptLanguage: "en-GB,en;q=0.9", Headers: map[string]string{"CF-IPCountry": "GB", "X-Forwarded-For": "51.140.0.1"}},
	"AU": {AcceptLanguage: "en-AU,en;q=0.9", Headers: map[string]string{"CF-IPCountry": "AU", "X-Forwarded-For": "13.54.0.1"}},
	"DE": {AcceptLanguage: "de-DE,de;q=0.9,en;q=0.8", Headers: map[string]string{"CF-IPCountry": "DE", "X-Forwarded-For": "18.184.0.1"}},
	"JP": {AcceptLanguage: "ja-JP,ja;q=0.9,en;q=0.8", Headers: map[string]string{"CF-IPCountry": "JP", "X-Forwarded-For": "13.112.0.1"}},
	"SG": {AcceptLanguage: "en-SG,en;q=0.9,zh-SG;q=0.8", Headers: map[string]string{"CF-IPCountry": "SG", "X-Forwarded-For": "13.228.0.1"}},
	"IN": {AcceptLanguage: "en-IN,en;q=0.9,hi;q=0.8", Headers: map[string]string{"CF-IPCountry": "IN", "X-Forwarded-For": "13.232.0.1"}},
}

// SupportedRegion reports whether code is one of the eight audit regions.
func SupportedRegion(code string) bool {
	_, ok := regionProfiles[strings.ToUpper(code)]
	return ok
}

// ProfileForRegion returns the header flavoring for a region code,
// defaulting to the US profile for unmapped codes.
func ProfileForRegion(code string) RegionProfile {
	if p, ok := regionProfiles[strings.ToUpper(code)]; ok {
		return p
	}
	return regionProfiles["US"]
}

// ResolveRegion derives a simulated server location for the target URL.
// Resolution order: ccTLD suffix table, then a best-effort probe for an
// edge-network country header, then the US default. It never fails; the
// location is metadata, not audit-critical.
func (e *Engine) ResolveRegion(ctx context.Context, targetURL string) model.ServerLocation {
	u, err := url.Parse(targetURL)
	if err != nil {
		return defaultLocation
	}

	host := strings.ToLower(u.Hostname())
	etld, _ := publicsuffix.PublicSuffix(host)
	if i := strings.LastIndex(etld, "."); i >= 0 {
		etld = etld[i+1:]
	}
	if loc, ok := tldLocations[etld]; ok {
		return loc
	}

	if loc, ok := e.probeCountryHeader(ctx, targetURL); ok {
		return loc
	}

	return defaultLocation
}

// probeCountryHeader issues a GET against the URL and reads a
// country-identifying response header set by common edge networks.
func (e *Engine) probeCountryHeader(ctx context.Context, targetURL string) (model.ServerLocation, bool) {
	ctx, cancel := context.WithTimeout(ctx, subResourceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return model.ServerLocation{}, false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return model.ServerLocation{}, false
	}
	defer resp.Body.Close()

	code := resp.Header.Get("CF-IPCountry")
	if code == "" {
		code = resp.Header.Get("X-Country-Code")
	}
	code = strings.ToUpper(strings.TrimSpace(code))

	name, ok := countryNames[code]
	if !ok {
		return model.ServerLocation{}, false
	}

	tz := countryTimezones[code]
	if tz == "" {
		tz = defaultLocation.Timezone
	}

	return model.ServerLocation{
		Country:  name,
		Region:   code,
		City:     "Unknown",
		Timezone: tz,
	}, true
}

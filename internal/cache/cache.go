// Package cache holds the audit-result cache. Two audits of the same
// URL and region within the TTL return the same record.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var Store *gocache.Cache

func Init() {
	Store = gocache.New(1*time.Hour, 15*time.Minute)
}

// Key builds the cache key for an audit of url in region.
func Key(url, region string) string {
	return region + "|" + url
}

package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether the request origin matches any of the
// configured patterns. Patterns compare against the origin's host[:port]:
// an exact host, "*" for everything, "*.example.com" for any subdomain, or
// "host:*" for any port.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, pattern := range patterns {
		if matchOriginPattern(pattern, host) {
			return true
		}
	}
	return false
}

func matchOriginPattern(pattern, host string) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	default:
		return strings.EqualFold(pattern, host)
	}
}

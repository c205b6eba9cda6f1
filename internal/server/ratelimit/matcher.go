package ratelimit

import "strings"

// unlimited is returned for endpoints that are never rate limited; a
// zero Limit tells Allow to skip the bucket entirely.
var unlimited EndpointConfig

// MatchEndpoint resolves the endpoint configuration for a request path
// and method. Exact path matches win; configs whose path ends in "/"
// match as prefixes, so "/profiles/" covers "/profiles/{id}". Returns
// nil when no config applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check must stay reachable for load balancers even
	// when a client is throttled everywhere else.
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method &&
			strings.HasSuffix(configs[i].Path, "/") &&
			strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}
	return nil
}

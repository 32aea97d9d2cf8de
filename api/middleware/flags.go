// ABOUTME: Feature flag middleware
// ABOUTME: Puts the flag manager on every request context

package middleware

import (
	"net/http"

	"pamphlets-api/pkg/featureflags"
)

// FeatureFlagsMiddleware makes manager available to handlers and services
// through featureflags.FromContext. A nil manager leaves the defaults in place.
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if manager == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}

package app

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"

	"github.com/rgm-logistics/forms-api/internal/config"
	"github.com/rgm-logistics/forms-api/pkg/utils"
)

// OriginAllowed applies the cross-origin policy: the explicit allow-list,
// any origin under the preview-deployment suffix, and requests without an
// Origin header (server-to-server) are permitted; everything else is not.
func OriginAllowed(cfg *config.Config, origin string) bool {
	if origin == "" {
		return true
	}
	if cfg.PreviewOriginSuffix != "" && strings.HasSuffix(origin, cfg.PreviewOriginSuffix) {
		return true
	}
	return slices.Contains(cfg.AllowedOrigins, origin)
}

// CORSHandler wraps the router so disallowed origins are rejected before any
// handler runs, then lets rs/cors manage headers and preflight for the rest.
func CORSHandler(cfg *config.Config, next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(cfg, origin)
		},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	inner := c.Handler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); !OriginAllowed(cfg, origin) {
			utils.Logger.Warnf("Blocked by CORS: %s", origin)
			utils.RespondError(w, http.StatusForbidden, "Origin not allowed")
			return
		}
		inner.ServeHTTP(w, r)
	})
}

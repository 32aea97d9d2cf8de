// Package api provides the HTTP API layer for the Pamphlets service.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation and typed handlers.
//
// # Layout
//
// - server.go: Huma API configuration and middleware chain
// - handlers/: render, paginate, book, article, import and embed handlers
// - dto/: request and response bodies plus domain mappers
// - middleware/: feature flags, request logging and rate limiting
//
// The OpenAPI document is served at /openapi.json and the interactive docs
// at /docs.
//
// # Validation
//
// Limits live in struct tags and are enforced by Huma before a handler runs:
//
//	type PaginateRequest struct {
//	    Content  string `json:"content" maxLength:"1000000"`
//	    MaxChars int    `json:"maxChars,omitempty" minimum:"0" maximum:"100000"`
//	}
//
// # Usage
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewRenderHandler(bookService).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8080", router)
//
// # Errors
//
// Errors are RFC 7807 problem documents. Domain errors map to status codes:
// not found to 404, validation to 400, a disabled feature to 403 and
// upstream import failures to 400, 429 or 503.
package api

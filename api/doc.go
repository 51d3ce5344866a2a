// Package api provides the HTTP API layer for the Fact-Chex host.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for checkers and health
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-IP rate limiting
// - views/: the server-rendered result modal
//
// # Checkers
//
// Every page instance creates its own checker and drives it through the
// checker endpoints:
//
//	POST   /checkers               create an idle checker
//	PUT    /checkers/{id}/query    replace the query
//	POST   /checkers/{id}/search   open the modal and submit the query
//	GET    /checkers/{id}          poll the state until is_loading is false
//	GET    /checkers/{id}/modal    fetch the modal as HTML
//	POST   /checkers/{id}/close    close the modal
//	DELETE /checkers/{id}          discard the checker
//
// Search answers before the fact-check service does. A failed fact-check
// never surfaces as an HTTP error; the modal shows the ERROR fallback
// result instead.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:         logger,
//	    Limiter:        middleware.NewRateLimiter(60, time.Minute),
//	    AllowedOrigins: []string{"http://localhost:4200"},
//	    Flags:          flags,
//	})
//
//	handlers.NewCheckerHandler(manager, renderer).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(factCheckService, manager).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "checker not found: 6f1c7f5e-..."
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api

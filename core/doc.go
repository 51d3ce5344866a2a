// Package core contains the business logic for the Fact-Chex host.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: AnalysisResult and the checker State with its derived Phase
// - checker: the claim checker state machine, its reducer and the Manager
// - factcheck: the client for the fact-checking service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, fact checker)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - State changes go through one pure reducer
//
// # Usage Example
//
//	import (
//	    "fact-chex/core/checker"
//	    "fact-chex/core/factcheck"
//	    "fact-chex/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := factcheck.NewService("http://127.0.0.1:8000", deps)
//	c := checker.New(service, checker.WithLogger(myLogger))
//
//	c.SetQuery("The moon is made of cheese")
//	c.Search()         // modal open, loading
//	c.Wait(ctx)        // result applied
//	state := c.State() // state.AnalysisResult.Verdict
package core

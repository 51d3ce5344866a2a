// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, checker storage, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client plus a logging round tripper
// - logger/structured: logrus-backed structured logger
// - registry/memory: go-cache backed checker registry with idle expiry
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
package infrastructure

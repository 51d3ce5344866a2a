// ABOUTME: Request DTOs for checker endpoints
// ABOUTME: Carries the query text typed into the claim checker input

package requests

// SetQueryRequest is the body of PUT /checkers/{id}/query
type SetQueryRequest struct {
	// Query is stored verbatim; whitespace only matters when searching
	Query string `json:"query" maxLength:"10000" doc:"Claim text as typed by the user"`
}

package rest

// ResponseError is the generic error payload for request failures that are
// not covered by a contract-fixed shape.
type ResponseError struct {
	Message string `json:"message"`
}

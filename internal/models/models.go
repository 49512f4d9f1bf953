package models

// Script is a single load-test script inside a project.
// Identity is the id; Script is an immutable value.
type Script struct {
	ID string `json:"id"`
}

// Project is a performance-test project as reported by the API.
// Script order is significant and preserved across encode/decode;
// duplicate script ids are legal and never deduplicated.
type Project struct {
	ID        string   `json:"id"`
	Installed bool     `json:"installed"`
	Scripts   []Script `json:"scripts"`
}

// LocustProject is the on-disk locust project shape reported by the
// local project manager.
type LocustProject struct {
	Name      string `json:"name"`
	Installed bool   `json:"installed"`
}

// APIError is a leaf failure detail attached to a specific failure
// symbol. Reason is optional on the wire.
type APIError struct {
	Message string  `json:"message"`
	Reason  *string `json:"reason,omitempty"`
}

// Reasonf is a convenience for building an APIError with a reason set.
func Reasonf(message, reason string) APIError {
	return APIError{Message: message, Reason: &reason}
}

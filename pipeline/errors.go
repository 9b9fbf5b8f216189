package pipeline

import "fmt"

// AuthenticationError means the session guard failed; nothing was provisioned.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// NamingError means a derived name violated its resource type's grammar.
// Raised before any cloud call.
type NamingError struct {
	Err error
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("naming failed: %v", e.Err)
}

func (e *NamingError) Unwrap() error { return e.Err }

// ResourceCreationError means a provisioning call failed. Resources created
// earlier in the run are left in place; there is no rollback.
type ResourceCreationError struct {
	Stage string
	Err   error
}

func (e *ResourceCreationError) Error() string {
	return fmt.Sprintf("%s creation failed: %v", e.Stage, e.Err)
}

func (e *ResourceCreationError) Unwrap() error { return e.Err }

package registry

// RegistryError is a custom error type for registry-related errors
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound RegistryError = "session not found"
)

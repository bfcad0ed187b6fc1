package coordinator

// CoordinatorError is a custom error type for coordinator-related errors
type CoordinatorError string

// Error implements the error interface
func (e CoordinatorError) Error() string {
	return string(e)
}

// Define errors. ErrStoryNotFound and ErrNotAnAuthor are expected rejection
// kinds: callers log them and move on, they never crash a connection handler.
const (
	ErrStoryNotFound CoordinatorError = "story not found"
	ErrNotAnAuthor   CoordinatorError = "user is not an author of this story"
	ErrNilConfig     CoordinatorError = "config cannot be nil"
	ErrNilStoryRepo  CoordinatorError = "story repository cannot be nil"
	ErrNilRegistry   CoordinatorError = "registry cannot be nil"
	ErrNilPublisher  CoordinatorError = "publisher cannot be nil"
)

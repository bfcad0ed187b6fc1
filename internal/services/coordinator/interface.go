package coordinator

import "context"

// Service defines the interface for session coordination operations
type Service interface {
	// Join attaches a connection to a story's live session
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave detaches a connection from a story's live session
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// Contribute persists new story text and broadcasts it to the session
	Contribute(ctx context.Context, input *ContributeInput) (*ContributeOutput, error)
}

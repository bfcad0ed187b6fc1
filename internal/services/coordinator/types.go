package coordinator

import (
	"log/slog"

	"github.com/storyloop/storyloop/internal/models"
	"github.com/storyloop/storyloop/internal/push"
	"github.com/storyloop/storyloop/internal/registry"
	storyRepo "github.com/storyloop/storyloop/internal/repositories/story"
)

// Config holds the dependencies for the coordinator service
type Config struct {
	// StoryRepo is the durable story store
	StoryRepo storyRepo.Repository

	// Registry holds the live session state
	Registry *registry.Registry

	// Publisher delivers push events to connections
	Publisher push.Publisher

	// Logger is optional; slog.Default is used when nil
	Logger *slog.Logger
}

// JoinInput contains parameters for attaching a connection to a session
type JoinInput struct {
	// ConnID identifies the transport connection
	ConnID string

	// UserID is the authenticated caller
	UserID string

	// StoryID is the story whose session to join
	StoryID string
}

// JoinOutput contains the result of a join
type JoinOutput struct {
	// SessionCreated is true when this join created the session entry
	SessionCreated bool

	// MemberCount is the session size after the join
	MemberCount int
}

// LeaveInput contains parameters for detaching a connection from a session
type LeaveInput struct {
	ConnID  string
	UserID  string
	StoryID string
}

// LeaveOutput contains the result of a leave
type LeaveOutput struct {
	// SessionRemoved is true when the session was torn down because the
	// last member left
	SessionRemoved bool
}

// ContributeInput contains parameters for adding text to a story
type ContributeInput struct {
	ConnID  string
	UserID  string
	StoryID string
	Text    string
}

// ContributeOutput contains the result of a contribution
type ContributeOutput struct {
	// Contribution is the persisted content record
	Contribution *models.Contribution
}

package push

import (
	"time"

	"github.com/storyloop/storyloop/internal/models"
)

// EventType represents the different categories of push events
type EventType string

const (
	// EventUserConnected announces a user joining a session
	EventUserConnected EventType = "user_connected"

	// EventUserDisconnected announces a user leaving a session
	EventUserDisconnected EventType = "user_disconnected"

	// EventTurnChanged announces that the turn rotated to a new author
	EventTurnChanged EventType = "turn_changed"

	// EventContentAdded announces new text added to the story
	EventContentAdded EventType = "content_added"

	// EventActionFailed tells a single caller that their request was rejected
	EventActionFailed EventType = "action_failed"
)

// Event is one outbound push message. Only the fields relevant to the event
// type are populated.
type Event struct {
	// Type is the event category
	Type EventType `json:"type"`

	// StoryID is the session's story
	StoryID string `json:"story_id,omitempty"`

	// UserID is the user who connected or disconnected
	UserID string `json:"user_id,omitempty"`

	// AuthorID is the new current author after a turn change
	AuthorID string `json:"author_id,omitempty"`

	// TurnExpiresAt is when the new turn ends
	TurnExpiresAt time.Time `json:"turn_expires_at,omitempty"`

	// Content is the contribution that was added
	Content *models.Contribution `json:"content,omitempty"`

	// Reason explains a rejected action
	Reason string `json:"reason,omitempty"`
}

// NewUserConnected builds a user-connected event
func NewUserConnected(storyID, userID string) *Event {
	return &Event{Type: EventUserConnected, StoryID: storyID, UserID: userID}
}

// NewUserDisconnected builds a user-disconnected event
func NewUserDisconnected(storyID, userID string) *Event {
	return &Event{Type: EventUserDisconnected, StoryID: storyID, UserID: userID}
}

// NewTurnChanged builds a turn-changed event carrying the next expiry instant
// so clients can run their own countdown
func NewTurnChanged(storyID, authorID string, expiresAt time.Time) *Event {
	return &Event{Type: EventTurnChanged, StoryID: storyID, AuthorID: authorID, TurnExpiresAt: expiresAt}
}

// NewContentAdded builds a content-added event
func NewContentAdded(storyID string, content *models.Contribution) *Event {
	return &Event{Type: EventContentAdded, StoryID: storyID, Content: content}
}

// NewActionFailed builds an action-failed event addressed to one caller
func NewActionFailed(storyID, reason string) *Event {
	return &Event{Type: EventActionFailed, StoryID: storyID, Reason: reason}
}

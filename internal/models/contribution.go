package models

import (
	"time"
)

// Contribution represents one piece of text added to a story
type Contribution struct {
	// ID is the unique identifier for this contribution
	ID string

	// StoryID is the story the text was added to
	StoryID string

	// AuthorID is the user who wrote the text
	AuthorID string

	// Text is the contributed content
	Text string

	// CreatedAt is when the contribution was persisted
	CreatedAt time.Time
}

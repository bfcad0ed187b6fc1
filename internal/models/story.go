package models

import (
	"time"
)

// Story represents a collaborative story and its turn rotation state
type Story struct {
	// ID is the unique identifier for the story
	ID string

	// Title is the display title of the story
	Title string

	// CurrentAuthorID is the author whose turn it is now
	CurrentAuthorID string

	// TurnDurationSeconds is how long each author's turn lasts
	TurnDurationSeconds int

	// Authors contains the story's authors in the order they joined
	Authors []StoryAuthor

	// AuthorsChangedAt is when the rotation or author membership last changed
	AuthorsChangedAt time.Time

	// CreatedAt is when the story was created
	CreatedAt time.Time

	// UpdatedAt is when the story was last updated
	UpdatedAt time.Time
}

// StoryAuthor represents one author's membership in a story
type StoryAuthor struct {
	// AuthorID is the ID of the author
	AuthorID string

	// EntryDate is when the author joined the story; rotation order is
	// ascending by this value
	EntryDate time.Time
}

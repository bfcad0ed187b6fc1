package story

import (
	"time"

	"github.com/storyloop/storyloop/internal/models"
)

type SaveStoryInput struct {
	Story *models.Story
}

type GetStoryInput struct {
	StoryID string
}

type StoryExistsInput struct {
	StoryID string
}

type StoryExistsOutput struct {
	Exists bool
}

type IsAuthorInput struct {
	StoryID string
	UserID  string
}

type IsAuthorOutput struct {
	IsAuthor bool
}

type GetSessionSeedInput struct {
	StoryID string
}

type GetSessionSeedOutput struct {
	// TurnDurationSeconds is the story's configured turn length
	TurnDurationSeconds int

	// ElapsedSeconds is how long ago the rotation or author membership
	// last changed
	ElapsedSeconds float64
}

type GetOrderedAuthorsInput struct {
	StoryID string
}

type GetOrderedAuthorsOutput struct {
	Authors []models.StoryAuthor
}

type GetCurrentAuthorInput struct {
	StoryID string
}

type GetCurrentAuthorOutput struct {
	AuthorID string
}

type CommitRotationInput struct {
	StoryID     string
	NewAuthorID string
	ChangedAt   time.Time
}

type PersistContributionInput struct {
	StoryID string
	UserID  string
	Text    string
}

type PersistContributionOutput struct {
	Contribution *models.Contribution
}

type GetContributionsInput struct {
	StoryID string
}

type GetContributionsOutput struct {
	Contributions []*models.Contribution
}

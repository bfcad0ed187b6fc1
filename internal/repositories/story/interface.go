package story

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/storyloop/storyloop/internal/repositories/story Repository

import (
	"context"

	"github.com/storyloop/storyloop/internal/models"
)

// Repository defines the interface for story data persistence
type Repository interface {
	// SaveStory persists a story
	SaveStory(ctx context.Context, input *SaveStoryInput) error

	// GetStory retrieves a story by ID
	GetStory(ctx context.Context, input *GetStoryInput) (*models.Story, error)

	// StoryExists reports whether a story exists
	StoryExists(ctx context.Context, input *StoryExistsInput) (*StoryExistsOutput, error)

	// IsAuthor reports whether a user is one of a story's authors
	IsAuthor(ctx context.Context, input *IsAuthorInput) (*IsAuthorOutput, error)

	// GetSessionSeed returns the data needed to create a live session for a story
	GetSessionSeed(ctx context.Context, input *GetSessionSeedInput) (*GetSessionSeedOutput, error)

	// GetOrderedAuthors returns a story's authors in ascending entry-date order
	GetOrderedAuthors(ctx context.Context, input *GetOrderedAuthorsInput) (*GetOrderedAuthorsOutput, error)

	// GetCurrentAuthor returns the author whose turn it is now
	GetCurrentAuthor(ctx context.Context, input *GetCurrentAuthorInput) (*GetCurrentAuthorOutput, error)

	// CommitRotation persists a new current author and membership-change timestamp
	CommitRotation(ctx context.Context, input *CommitRotationInput) error

	// PersistContribution appends new text to a story
	PersistContribution(ctx context.Context, input *PersistContributionInput) (*PersistContributionOutput, error)

	// GetContributions returns a story's contributions in the order they were added
	GetContributions(ctx context.Context, input *GetContributionsInput) (*GetContributionsOutput, error)
}

package story

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/storyloop/storyloop/internal/common/clock"
	"github.com/storyloop/storyloop/internal/models"
)

const (
	// Key prefixes for Redis
	storyKeyPrefix         = "story:"
	contributionsKeySuffix = ":contributions"
)

// ErrStoryNotFound is returned when a story is not found
var ErrStoryNotFound = errors.New("story not found")

// Config holds configuration for the Redis story repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used to timestamp writes and compute elapsed turn time
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed story repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  clk,
	}, nil
}

// SaveStory persists a story to Redis
func (r *redisRepository) SaveStory(ctx context.Context, input *SaveStoryInput) error {
	if input == nil || input.Story == nil {
		return errors.New("input and story cannot be nil")
	}

	storyJSON, err := json.Marshal(input.Story)
	if err != nil {
		return fmt.Errorf("failed to marshal story: %w", err)
	}

	storyKey := fmt.Sprintf("%s%s", storyKeyPrefix, input.Story.ID)
	if err := r.client.Set(ctx, storyKey, storyJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save story: %w", err)
	}

	return nil
}

// GetStory retrieves a story by ID from Redis
func (r *redisRepository) GetStory(ctx context.Context, input *GetStoryInput) (*models.Story, error) {
	if input == nil || input.StoryID == "" {
		return nil, errors.New("input and story ID cannot be empty")
	}

	storyKey := fmt.Sprintf("%s%s", storyKeyPrefix, input.StoryID)
	storyJSON, err := r.client.Get(ctx, storyKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStoryNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	var story models.Story
	if err := json.Unmarshal([]byte(storyJSON), &story); err != nil {
		return nil, fmt.Errorf("failed to unmarshal story: %w", err)
	}

	return &story, nil
}

// StoryExists reports whether a story exists in Redis
func (r *redisRepository) StoryExists(ctx context.Context, input *StoryExistsInput) (*StoryExistsOutput, error) {
	if input == nil || input.StoryID == "" {
		return nil, errors.New("input and story ID cannot be empty")
	}

	storyKey := fmt.Sprintf("%s%s", storyKeyPrefix, input.StoryID)
	count, err := r.client.Exists(ctx, storyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check story existence: %w", err)
	}

	return &StoryExistsOutput{Exists: count > 0}, nil
}

// IsAuthor reports whether a user is one of a story's authors
func (r *redisRepository) IsAuthor(ctx context.Context, input *IsAuthorInput) (*IsAuthorOutput, error) {
	if input == nil || input.StoryID == "" || input.UserID == "" {
		return nil, errors.New("input, story ID and user ID cannot be empty")
	}

	story, err := r.GetStory(ctx, &GetStoryInput{StoryID: input.StoryID})
	if err != nil {
		return nil, err
	}

	for _, author := range story.Authors {
		if author.AuthorID == input.UserID {
			return &IsAuthorOutput{IsAuthor: true}, nil
		}
	}

	return &IsAuthorOutput{IsAuthor: false}, nil
}

// GetSessionSeed returns the turn duration and the time elapsed since the
// story's rotation state last changed
func (r *redisRepository) GetSessionSeed(ctx context.Context, input *GetSessionSeedInput) (*GetSessionSeedOutput, error) {
	if input == nil || input.StoryID == "" {
		return nil, errors.New("input and story ID cannot be empty")
	}

	story, err := r.GetStory(ctx, &GetStoryInput{StoryID: input.StoryID})
	if err != nil {
		return nil, err
	}

	elapsed := r.clock.Now().Sub(story.AuthorsChangedAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	return &GetSessionSeedOutput{
		TurnDurationSeconds: story.TurnDurationSeconds,
		ElapsedSeconds:      elapsed,
	}, nil
}

// GetOrderedAuthors returns a story's authors sorted ascending by entry date
func (r *redisRepository) GetOrderedAuthors(ctx context.Context, input *GetOrderedAuthorsInput) (*GetOrderedAuthorsOutput, error) {
	if input == nil || input.StoryID == "" {
		return nil, errors.New("input and story ID cannot be empty")
	}

	story, err := r.GetStory(ctx, &GetStoryInput{StoryID: input.StoryID})
	if err != nil {
		return nil, err
	}

	authors := make([]models.StoryAuthor, len(story.Authors))
	copy(authors, story.Authors)
	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].EntryDate.Before(authors[j].EntryDate)
	})

	return &GetOrderedAuthorsOutput{Authors: authors}, nil
}

// GetCurrentAuthor returns the author whose turn it is now
func (r *redisRepository) GetCurrentAuthor(ctx context.Context, input *GetCurrentAuthorInput) (*GetCurrentAuthorOutput, error) {
	if input == nil || input.StoryID == "" {
		return nil, errors.New("input and story ID cannot be empty")
	}

	story, err := r.GetStory(ctx, &GetStoryInput{StoryID: input.StoryID})
	if err != nil {
		return nil, err
	}

	return &GetCurrentAuthorOutput{AuthorID: story.CurrentAuthorID}, nil
}

// CommitRotation persists a new current author together with the
// membership-change timestamp. Both fields land in one write so a reader
// never sees one without the other.
func (r *redisRepository) CommitRotation(ctx context.Context, input *CommitRotationInput) error {
	if input == nil || input.StoryID == "" || input.NewAuthorID == "" {
		return errors.New("input, story ID and new author ID cannot be empty")
	}

	story, err := r.GetStory(ctx, &GetStoryInput{StoryID: input.StoryID})
	if err != nil {
		return err
	}

	story.CurrentAuthorID = input.NewAuthorID
	story.AuthorsChangedAt = input.ChangedAt
	story.UpdatedAt = r.clock.Now()

	if err := r.SaveStory(ctx, &SaveStoryInput{Story: story}); err != nil {
		return fmt.Errorf("failed to commit rotation: %w", err)
	}

	return nil
}

// PersistContribution appends new text to a story's contribution log
func (r *redisRepository) PersistContribution(ctx context.Context, input *PersistContributionInput) (*PersistContributionOutput, error) {
	if input == nil || input.StoryID == "" || input.UserID == "" {
		return nil, errors.New("input, story ID and user ID cannot be empty")
	}

	story, err := r.GetStory(ctx, &GetStoryInput{StoryID: input.StoryID})
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	contribution := &models.Contribution{
		ID:        uuid.New().String(),
		StoryID:   input.StoryID,
		AuthorID:  input.UserID,
		Text:      input.Text,
		CreatedAt: now,
	}

	contributionJSON, err := json.Marshal(contribution)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contribution: %w", err)
	}

	story.UpdatedAt = now
	storyJSON, err := json.Marshal(story)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal story: %w", err)
	}

	// Append the contribution and bump the story timestamp together.
	pipe := r.client.Pipeline()
	contributionsKey := fmt.Sprintf("%s%s%s", storyKeyPrefix, input.StoryID, contributionsKeySuffix)
	pipe.RPush(ctx, contributionsKey, contributionJSON)
	storyKey := fmt.Sprintf("%s%s", storyKeyPrefix, input.StoryID)
	pipe.Set(ctx, storyKey, storyJSON, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist contribution: %w", err)
	}

	return &PersistContributionOutput{Contribution: contribution}, nil
}

// GetContributions returns a story's contributions in insertion order
func (r *redisRepository) GetContributions(ctx context.Context, input *GetContributionsInput) (*GetContributionsOutput, error) {
	if input == nil || input.StoryID == "" {
		return nil, errors.New("input and story ID cannot be empty")
	}

	contributionsKey := fmt.Sprintf("%s%s%s", storyKeyPrefix, input.StoryID, contributionsKeySuffix)
	entries, err := r.client.LRange(ctx, contributionsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get contributions: %w", err)
	}

	contributions := make([]*models.Contribution, 0, len(entries))
	for _, entry := range entries {
		var contribution models.Contribution
		if err := json.Unmarshal([]byte(entry), &contribution); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contribution: %w", err)
		}
		contributions = append(contributions, &contribution)
	}

	return &GetContributionsOutput{Contributions: contributions}, nil
}

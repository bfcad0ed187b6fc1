package story

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/storyloop/storyloop/internal/models"
)

// fixedClock pins repository timestamps for assertions
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	clock   *fixedClock
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock = &fixedClock{now: s.testNow}

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testStory() *models.Story {
	entryBase := s.testNow.Add(-time.Hour)
	return &models.Story{
		ID:                  "158",
		Title:               "The Lighthouse Letters",
		CurrentAuthorID:     "author-1",
		TurnDurationSeconds: 1447,
		Authors: []models.StoryAuthor{
			{AuthorID: "author-1", EntryDate: entryBase},
			{AuthorID: "author-2", EntryDate: entryBase.Add(5 * time.Minute)},
			{AuthorID: "author-3", EntryDate: entryBase.Add(10 * time.Minute)},
		},
		AuthorsChangedAt: s.testNow.Add(-4 * time.Minute),
		CreatedAt:        entryBase,
		UpdatedAt:        entryBase,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetStory() {
	story := s.testStory()

	err := s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: story})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetStory(context.Background(), &GetStoryInput{StoryID: "158"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("158", retrieved.ID)
	s.Equal("The Lighthouse Letters", retrieved.Title)
	s.Equal("author-1", retrieved.CurrentAuthorID)
	s.Equal(1447, retrieved.TurnDurationSeconds)
	s.Len(retrieved.Authors, 3)
	s.Equal(story.AuthorsChangedAt.Unix(), retrieved.AuthorsChangedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetStoryNotFound() {
	_, err := s.repo.GetStory(context.Background(), &GetStoryInput{StoryID: "missing"})
	s.ErrorIs(err, ErrStoryNotFound)
}

func (s *RedisRepositoryTestSuite) TestStoryExists() {
	out, err := s.repo.StoryExists(context.Background(), &StoryExistsInput{StoryID: "158"})
	s.Require().NoError(err)
	s.False(out.Exists)

	s.Require().NoError(s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: s.testStory()}))

	out, err = s.repo.StoryExists(context.Background(), &StoryExistsInput{StoryID: "158"})
	s.Require().NoError(err)
	s.True(out.Exists)
}

func (s *RedisRepositoryTestSuite) TestIsAuthor() {
	s.Require().NoError(s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: s.testStory()}))

	out, err := s.repo.IsAuthor(context.Background(), &IsAuthorInput{StoryID: "158", UserID: "author-2"})
	s.Require().NoError(err)
	s.True(out.IsAuthor)

	out, err = s.repo.IsAuthor(context.Background(), &IsAuthorInput{StoryID: "158", UserID: "stranger"})
	s.Require().NoError(err)
	s.False(out.IsAuthor)
}

func (s *RedisRepositoryTestSuite) TestGetSessionSeed() {
	s.Require().NoError(s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: s.testStory()}))

	out, err := s.repo.GetSessionSeed(context.Background(), &GetSessionSeedInput{StoryID: "158"})
	s.Require().NoError(err)
	s.Equal(1447, out.TurnDurationSeconds)
	// AuthorsChangedAt is 4 minutes before the fixed clock.
	s.Equal(240.0, out.ElapsedSeconds)
}

func (s *RedisRepositoryTestSuite) TestGetOrderedAuthors() {
	story := s.testStory()
	// Store them out of order; reads must sort by entry date.
	story.Authors = []models.StoryAuthor{story.Authors[2], story.Authors[0], story.Authors[1]}
	s.Require().NoError(s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: story}))

	out, err := s.repo.GetOrderedAuthors(context.Background(), &GetOrderedAuthorsInput{StoryID: "158"})
	s.Require().NoError(err)
	s.Require().Len(out.Authors, 3)
	s.Equal("author-1", out.Authors[0].AuthorID)
	s.Equal("author-2", out.Authors[1].AuthorID)
	s.Equal("author-3", out.Authors[2].AuthorID)
}

func (s *RedisRepositoryTestSuite) TestCommitRotation() {
	s.Require().NoError(s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: s.testStory()}))

	changedAt := s.testNow.Add(30 * time.Second)
	err := s.repo.CommitRotation(context.Background(), &CommitRotationInput{
		StoryID:     "158",
		NewAuthorID: "author-2",
		ChangedAt:   changedAt,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetStory(context.Background(), &GetStoryInput{StoryID: "158"})
	s.Require().NoError(err)
	s.Equal("author-2", retrieved.CurrentAuthorID)
	s.Equal(changedAt.Unix(), retrieved.AuthorsChangedAt.Unix())

	current, err := s.repo.GetCurrentAuthor(context.Background(), &GetCurrentAuthorInput{StoryID: "158"})
	s.Require().NoError(err)
	s.Equal("author-2", current.AuthorID)
}

func (s *RedisRepositoryTestSuite) TestCommitRotationMissingStory() {
	err := s.repo.CommitRotation(context.Background(), &CommitRotationInput{
		StoryID:     "missing",
		NewAuthorID: "author-2",
		ChangedAt:   s.testNow,
	})
	s.ErrorIs(err, ErrStoryNotFound)
}

func (s *RedisRepositoryTestSuite) TestPersistAndGetContributions() {
	s.Require().NoError(s.repo.SaveStory(context.Background(), &SaveStoryInput{Story: s.testStory()}))

	first, err := s.repo.PersistContribution(context.Background(), &PersistContributionInput{
		StoryID: "158",
		UserID:  "author-1",
		Text:    "The keeper lit the lamp at dusk.",
	})
	s.Require().NoError(err)
	s.Require().NotNil(first.Contribution)
	s.NotEmpty(first.Contribution.ID)
	s.Equal(s.testNow.Unix(), first.Contribution.CreatedAt.Unix())

	second, err := s.repo.PersistContribution(context.Background(), &PersistContributionInput{
		StoryID: "158",
		UserID:  "author-2",
		Text:    "A ship answered from the fog.",
	})
	s.Require().NoError(err)

	out, err := s.repo.GetContributions(context.Background(), &GetContributionsInput{StoryID: "158"})
	s.Require().NoError(err)
	s.Require().Len(out.Contributions, 2)
	s.Equal(first.Contribution.ID, out.Contributions[0].ID)
	s.Equal(second.Contribution.ID, out.Contributions[1].ID)
	s.Equal("author-2", out.Contributions[1].AuthorID)
}

func (s *RedisRepositoryTestSuite) TestPersistContributionMissingStory() {
	_, err := s.repo.PersistContribution(context.Background(), &PersistContributionInput{
		StoryID: "missing",
		UserID:  "author-1",
		Text:    "orphan text",
	})
	s.ErrorIs(err, ErrStoryNotFound)
}

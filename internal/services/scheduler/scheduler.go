package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/storyloop/storyloop/internal/common/clock"
	"github.com/storyloop/storyloop/internal/push"
	"github.com/storyloop/storyloop/internal/registry"
	storyRepo "github.com/storyloop/storyloop/internal/repositories/story"
	"github.com/storyloop/storyloop/internal/rotation"
)

const (
	defaultInterval = time.Second
)

// Define errors
var (
	ErrNilConfig    = errors.New("config cannot be nil")
	ErrNilRegistry  = errors.New("registry cannot be nil")
	ErrNilStoryRepo = errors.New("story repository cannot be nil")
	ErrNilPublisher = errors.New("publisher cannot be nil")
)

// Config holds the dependencies for the turn scheduler
type Config struct {
	// Registry holds the live session state
	Registry *registry.Registry

	// StoryRepo is the durable story store
	StoryRepo storyRepo.Repository

	// Publisher delivers push events to connections
	Publisher push.Publisher

	// Clock is optional; the system clock is used when nil
	Clock clock.Clock

	// Interval is the tick period; defaults to one second
	Interval time.Duration

	// Logger is optional; slog.Default is used when nil
	Logger *slog.Logger
}

// Scheduler ages every active session's turn timer on a fixed period and
// rotates the turn when a timer expires
type Scheduler struct {
	registry  *registry.Registry
	storyRepo storyRepo.Repository
	publisher push.Publisher
	clock     clock.Clock
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new turn scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.StoryRepo == nil {
		return nil, ErrNilStoryRepo
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		registry:  cfg.Registry,
		storyRepo: cfg.StoryRepo,
		publisher: cfg.Publisher,
		clock:     clk,
		interval:  interval,
		logger:    logger,
	}, nil
}

// Run ticks until ctx is cancelled. Cancellation is cooperative: an in-flight
// tick finishes the session it is processing before the loop exits, so no
// session is ever left half-updated.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("turn scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("turn scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx, s.interval.Seconds())
		}
	}
}

// Tick ages every active session by deltaSeconds. Sessions are processed
// independently: a failure in one is logged and does not stop the others.
func (s *Scheduler) Tick(ctx context.Context, deltaSeconds float64) {
	for _, key := range s.registry.SessionKeys() {
		if ctx.Err() != nil {
			return
		}

		if err := s.processSession(ctx, key, deltaSeconds); err != nil {
			s.logger.Error("failed to process session",
				"story_id", key,
				"error", err)
		}
	}
}

// processSession decrements one session's timer and rotates the turn when it
// expires. Decrement-and-maybe-rotate is applied as a unit for the session.
func (s *Scheduler) processSession(ctx context.Context, storyID string, deltaSeconds float64) error {
	_, expired, err := s.registry.DecrementRemaining(storyID, deltaSeconds)
	if err != nil {
		if errors.Is(err, registry.ErrSessionNotFound) {
			// Session was torn down after the key snapshot.
			return nil
		}
		return err
	}

	if !expired {
		return nil
	}

	return s.rotate(ctx, storyID)
}

// rotate advances the story's current author, persists the change, resets the
// session timer, and broadcasts the new turn. If the store commit fails the
// timer stays at zero so the next tick retries the rotation.
func (s *Scheduler) rotate(ctx context.Context, storyID string) error {
	authors, err := s.storyRepo.GetOrderedAuthors(ctx, &storyRepo.GetOrderedAuthorsInput{StoryID: storyID})
	if err != nil {
		return fmt.Errorf("failed to get authors: %w", err)
	}

	current, err := s.storyRepo.GetCurrentAuthor(ctx, &storyRepo.GetCurrentAuthorInput{StoryID: storyID})
	if err != nil {
		return fmt.Errorf("failed to get current author: %w", err)
	}

	next, err := rotation.Next(authors.Authors, current.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to rotate story %s: %w", storyID, err)
	}

	now := s.clock.Now()
	err = s.storyRepo.CommitRotation(ctx, &storyRepo.CommitRotationInput{
		StoryID:     storyID,
		NewAuthorID: next,
		ChangedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("failed to commit rotation: %w", err)
	}

	if err := s.registry.ResetRemaining(storyID); err != nil {
		return fmt.Errorf("failed to reset timer: %w", err)
	}

	duration, err := s.registry.TurnDuration(storyID)
	if err != nil {
		return fmt.Errorf("failed to get turn duration: %w", err)
	}

	members, err := s.registry.Members(storyID)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	expiresAt := now.Add(time.Duration(duration) * time.Second)
	push.Fanout(ctx, s.logger, s.publisher, members, push.NewTurnChanged(storyID, next, expiresAt))

	s.logger.Info("turn rotated",
		"story_id", storyID,
		"new_author", next,
		"expires_at", expiresAt)

	return nil
}

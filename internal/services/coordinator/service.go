package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/storyloop/storyloop/internal/push"
	"github.com/storyloop/storyloop/internal/registry"
	storyRepo "github.com/storyloop/storyloop/internal/repositories/story"
)

// service implements the Service interface.
//
// Contribute authorization checks story membership only; any listed author
// may add text at any time, the turn state merely gates rotation.
type service struct {
	storyRepo storyRepo.Repository
	registry  *registry.Registry
	publisher push.Publisher
	logger    *slog.Logger
}

// New creates a new coordinator service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StoryRepo == nil {
		return nil, ErrNilStoryRepo
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		storyRepo: cfg.StoryRepo,
		registry:  cfg.Registry,
		publisher: cfg.Publisher,
		logger:    logger,
	}, nil
}

// Join attaches a connection to a story's live session, creating the session
// from store data when it does not exist yet, and announces the arrival to
// every member
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.authorize(ctx, input.UserID, input.StoryID); err != nil {
		if isRejection(err) {
			s.logger.Warn("join rejected",
				"user_id", input.UserID,
				"story_id", input.StoryID,
				"reason", err.Error())
		}
		return nil, err
	}

	created, err := s.ensureSession(ctx, input.StoryID)
	if err != nil {
		return nil, err
	}

	if err := s.registry.AddMember(input.StoryID, input.ConnID); err != nil {
		// The session was torn down between creation and the member add;
		// reseed once from the store.
		if _, err := s.ensureSession(ctx, input.StoryID); err != nil {
			return nil, err
		}
		if err := s.registry.AddMember(input.StoryID, input.ConnID); err != nil {
			return nil, fmt.Errorf("failed to add member: %w", err)
		}
	}

	members, err := s.registry.Members(input.StoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	push.Fanout(ctx, s.logger, s.publisher, members, push.NewUserConnected(input.StoryID, input.UserID))

	return &JoinOutput{
		SessionCreated: created,
		MemberCount:    len(members),
	}, nil
}

// Leave detaches a connection from a story's session, announces the departure
// to the remaining members, and tears the session down when it becomes empty
func (s *service) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.authorize(ctx, input.UserID, input.StoryID); err != nil {
		if isRejection(err) {
			s.logger.Warn("leave rejected",
				"user_id", input.UserID,
				"story_id", input.StoryID,
				"reason", err.Error())
		}
		return nil, err
	}

	if err := s.registry.RemoveMember(input.StoryID, input.ConnID); err != nil {
		// No live session for this story; nothing to leave.
		return &LeaveOutput{}, nil
	}

	members, err := s.registry.Members(input.StoryID)
	if err != nil {
		return &LeaveOutput{}, nil
	}

	push.Fanout(ctx, s.logger, s.publisher, members, push.NewUserDisconnected(input.StoryID, input.UserID))

	if len(members) == 0 {
		// Empty sessions are torn down immediately; the next join reseeds
		// timer state from the store.
		s.registry.RemoveSession(input.StoryID)
		return &LeaveOutput{SessionRemoved: true}, nil
	}

	return &LeaveOutput{}, nil
}

// Contribute persists new story text and broadcasts it to the session. An
// unauthorized caller gets an action-failed event on their own connection
// only; nothing is persisted or broadcast.
func (s *service) Contribute(ctx context.Context, input *ContributeInput) (*ContributeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.authorize(ctx, input.UserID, input.StoryID); err != nil {
		if isRejection(err) {
			s.logger.Warn("contribute rejected",
				"user_id", input.UserID,
				"story_id", input.StoryID,
				"reason", err.Error())
			s.notifyFailure(ctx, input.ConnID, input.StoryID, err)
		}
		return nil, err
	}

	persisted, err := s.storyRepo.PersistContribution(ctx, &storyRepo.PersistContributionInput{
		StoryID: input.StoryID,
		UserID:  input.UserID,
		Text:    input.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist contribution: %w", err)
	}

	// Broadcast only after the write is durable. A contributor who never
	// joined the session simply has no members to notify.
	members, err := s.registry.Members(input.StoryID)
	if err == nil {
		push.Fanout(ctx, s.logger, s.publisher, members, push.NewContentAdded(input.StoryID, persisted.Contribution))
	}

	return &ContributeOutput{Contribution: persisted.Contribution}, nil
}

// authorize verifies the story exists and the user is one of its authors
func (s *service) authorize(ctx context.Context, userID, storyID string) error {
	exists, err := s.storyRepo.StoryExists(ctx, &storyRepo.StoryExistsInput{StoryID: storyID})
	if err != nil {
		return fmt.Errorf("failed to check story existence: %w", err)
	}
	if !exists.Exists {
		return ErrStoryNotFound
	}

	isAuthor, err := s.storyRepo.IsAuthor(ctx, &storyRepo.IsAuthorInput{
		StoryID: storyID,
		UserID:  userID,
	})
	if err != nil {
		return fmt.Errorf("failed to check authorship: %w", err)
	}
	if !isAuthor.IsAuthor {
		return ErrNotAnAuthor
	}

	return nil
}

// ensureSession creates the story's session from store data when absent. It
// returns whether this call created the session.
func (s *service) ensureSession(ctx context.Context, storyID string) (bool, error) {
	if s.registry.SessionExists(storyID) {
		return false, nil
	}

	seed, err := s.storyRepo.GetSessionSeed(ctx, &storyRepo.GetSessionSeedInput{StoryID: storyID})
	if err != nil {
		return false, fmt.Errorf("failed to seed session: %w", err)
	}

	// Late joiners see the true remaining time, not a fresh turn. An
	// overdue turn starts at zero and rotates on the next tick.
	remaining := float64(seed.TurnDurationSeconds) - seed.ElapsedSeconds

	return s.registry.AddSession(storyID, seed.TurnDurationSeconds, remaining), nil
}

// notifyFailure sends an action-failed event to the calling connection only
func (s *service) notifyFailure(ctx context.Context, connID, storyID string, cause error) {
	event := push.NewActionFailed(storyID, cause.Error())
	if err := s.publisher.Publish(ctx, connID, event); err != nil {
		s.logger.Warn("failed to deliver rejection notice",
			"conn_id", connID,
			"story_id", storyID,
			"error", err)
	}
}

// isRejection reports whether err is an expected authorization rejection as
// opposed to a store failure
func isRejection(err error) bool {
	return errors.Is(err, ErrStoryNotFound) || errors.Is(err, ErrNotAnAuthor)
}

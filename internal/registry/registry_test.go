package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = New()
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestAddSessionIsIdempotent() {
	created := s.registry.AddSession("158", 1447, 1200)
	s.True(created)

	// A second add must not overwrite the first call's values.
	created = s.registry.AddSession("158", 60, 10)
	s.False(created)

	duration, err := s.registry.TurnDuration("158")
	s.Require().NoError(err)
	s.Equal(1447, duration)

	remaining, err := s.registry.RemainingSeconds("158")
	s.Require().NoError(err)
	s.Equal(1200.0, remaining)
}

func (s *RegistryTestSuite) TestAddSessionClampsNegativeRemaining() {
	s.registry.AddSession("158", 60, -15)

	remaining, err := s.registry.RemainingSeconds("158")
	s.Require().NoError(err)
	s.Equal(0.0, remaining)
}

func (s *RegistryTestSuite) TestRemoveSessionAbsentKeyIsNoOp() {
	s.registry.RemoveSession("no-such-session")
	s.False(s.registry.SessionExists("no-such-session"))
}

func (s *RegistryTestSuite) TestOperationsOnAbsentKey() {
	_, err := s.registry.SessionIsEmpty("missing")
	s.ErrorIs(err, ErrSessionNotFound)

	err = s.registry.AddMember("missing", "conn-1")
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.registry.Members("missing")
	s.ErrorIs(err, ErrSessionNotFound)

	_, _, err = s.registry.DecrementRemaining("missing", 1)
	s.ErrorIs(err, ErrSessionNotFound)

	err = s.registry.ResetRemaining("missing")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RegistryTestSuite) TestMemberLifecycle() {
	s.registry.AddSession("158", 60, 60)

	empty, err := s.registry.SessionIsEmpty("158")
	s.Require().NoError(err)
	s.True(empty)

	s.Require().NoError(s.registry.AddMember("158", "conn-1"))
	s.Require().NoError(s.registry.AddMember("158", "conn-2"))
	s.Require().NoError(s.registry.AddMember("158", "conn-2")) // duplicate add

	members, err := s.registry.Members("158")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"conn-1", "conn-2"}, members)

	s.Require().NoError(s.registry.RemoveMember("158", "conn-1"))
	s.Require().NoError(s.registry.RemoveMember("158", "conn-gone")) // absent member

	members, err = s.registry.Members("158")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"conn-2"}, members)
}

func (s *RegistryTestSuite) TestDecrementRemainingNeverGoesNegative() {
	s.registry.AddSession("158", 30, 2.5)

	remaining, expired, err := s.registry.DecrementRemaining("158", 1)
	s.Require().NoError(err)
	s.False(expired)
	s.Equal(1.5, remaining)

	remaining, expired, err = s.registry.DecrementRemaining("158", 5)
	s.Require().NoError(err)
	s.True(expired)
	s.Equal(0.0, remaining)

	// The stored value is clamped, not negative.
	stored, err := s.registry.RemainingSeconds("158")
	s.Require().NoError(err)
	s.Equal(0.0, stored)

	s.Require().NoError(s.registry.ResetRemaining("158"))

	stored, err = s.registry.RemainingSeconds("158")
	s.Require().NoError(err)
	s.Equal(30.0, stored)
}

func (s *RegistryTestSuite) TestSessionKeysSnapshot() {
	s.registry.AddSession("1", 60, 60)
	s.registry.AddSession("2", 60, 60)
	s.registry.AddSession("3", 60, 60)

	s.ElementsMatch([]string{"1", "2", "3"}, s.registry.SessionKeys())

	s.registry.RemoveSession("2")
	s.ElementsMatch([]string{"1", "3"}, s.registry.SessionKeys())
}

func (s *RegistryTestSuite) TestConcurrentJoinAndLeave() {
	const joiners = 100
	const leavers = 40

	s.registry.AddSession("158", 60, 60)

	// Pre-populate the members that will leave.
	for i := 0; i < leavers; i++ {
		s.Require().NoError(s.registry.AddMember("158", fmt.Sprintf("leaver-%d", i)))
	}

	var wg sync.WaitGroup
	wg.Add(joiners + leavers)

	for i := 0; i < joiners; i++ {
		go func(i int) {
			defer wg.Done()
			_ = s.registry.AddMember("158", fmt.Sprintf("joiner-%d", i))
		}(i)
	}
	for i := 0; i < leavers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = s.registry.RemoveMember("158", fmt.Sprintf("leaver-%d", i))
		}(i)
	}

	wg.Wait()

	members, err := s.registry.Members("158")
	s.Require().NoError(err)
	s.Len(members, joiners)

	expected := make([]string, 0, joiners)
	for i := 0; i < joiners; i++ {
		expected = append(expected, fmt.Sprintf("joiner-%d", i))
	}
	s.ElementsMatch(expected, members)
}

func (s *RegistryTestSuite) TestConcurrentTimerAndMemberMutation() {
	const iterations = 200

	s.registry.AddSession("158", 60, float64(iterations)+10)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_, _, _ = s.registry.DecrementRemaining("158", 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_ = s.registry.AddMember("158", fmt.Sprintf("conn-%d", i))
		}
	}()

	wg.Wait()

	remaining, err := s.registry.RemainingSeconds("158")
	s.Require().NoError(err)
	s.Equal(10.0, remaining)

	members, err := s.registry.Members("158")
	s.Require().NoError(err)
	s.Len(members, iterations)
}

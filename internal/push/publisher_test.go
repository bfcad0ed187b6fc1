package push_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/storyloop/storyloop/internal/push"
	"github.com/storyloop/storyloop/internal/push/mocks"
)

func TestFanoutDeliversToAllMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	event := push.NewUserConnected("158", "author-1")

	publisher.EXPECT().Publish(gomock.Any(), "conn-1", event).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), "conn-2", event).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), "conn-3", event).Return(nil)

	push.Fanout(context.Background(), logger, publisher, []string{"conn-1", "conn-2", "conn-3"}, event)
}

func TestFanoutIsolatesDeliveryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	event := push.NewUserDisconnected("158", "author-2")

	// The failing recipient must not stop delivery to the rest.
	publisher.EXPECT().Publish(gomock.Any(), "conn-1", event).Return(errors.New("socket closed"))
	publisher.EXPECT().Publish(gomock.Any(), "conn-2", event).Return(nil)

	push.Fanout(context.Background(), logger, publisher, []string{"conn-1", "conn-2"}, event)
}

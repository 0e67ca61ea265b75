package delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hazelshop/admin-backend/internal/models"
	cfgpkg "github.com/hazelshop/admin-backend/pkg/config"
)

func TestNewSender_DefaultsToLog(t *testing.T) {
	log := zap.NewNop().Sugar()

	s := NewSender(&cfgpkg.Config{}, log)
	require.IsType(t, &logSender{}, s)

	s = NewSender(&cfgpkg.Config{Notification: cfgpkg.NotificationConfig{Sender: "smtp"}}, log)
	require.IsType(t, &logSender{}, s)
}

func TestLogSender_NeverFails(t *testing.T) {
	s := &logSender{log: zap.NewNop().Sugar()}
	err := s.Send(context.Background(), &models.Notification{ID: 1, EmailAddress: "member@example.com"})
	require.NoError(t, err)
}

package notification

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hazelshop/admin-backend/internal/models"
	"github.com/hazelshop/admin-backend/pkg/types"
)

func TestNewRecord_Defaults(t *testing.T) {
	record, err := newRecord(&CreateRequest{
		Category: types.NotificationCategoryOrder,
		Message:  "hi",
		Channel:  types.NotificationChannelEmail,
	})
	require.NoError(t, err)
	require.Equal(t, 0, record.EmailRetryCount)
	require.Nil(t, record.EmailSentAt)
	require.True(t, record.SentAt.IsZero())
	require.Equal(t, types.EmailStatusImmediate, record.EmailStatus)
	require.False(t, record.IsDeleted)
}

func TestNewRecord_ExplicitEmailStatus(t *testing.T) {
	record, err := newRecord(&CreateRequest{
		Message:     "hi",
		Channel:     types.NotificationChannelEmail,
		EmailStatus: types.EmailStatusScheduled,
	})
	require.NoError(t, err)
	require.Equal(t, types.EmailStatusScheduled, record.EmailStatus)
}

func TestNewRecord_MessageValidation(t *testing.T) {
	_, err := newRecord(&CreateRequest{Message: "", Channel: types.NotificationChannelEmail})
	require.ErrorIs(t, err, ErrValidation)

	_, err = newRecord(&CreateRequest{Message: "   ", Channel: types.NotificationChannelEmail})
	require.ErrorIs(t, err, ErrValidation)

	_, err = newRecord(&CreateRequest{Message: strings.Repeat("x", MessageMaxLen+1)})
	require.ErrorIs(t, err, ErrValidation)

	_, err = newRecord(nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestNewRecord_FailOpenCategoryAndChannel(t *testing.T) {
	// Empty or unrecognized category/channel values are stored verbatim,
	// only the message is hard-validated.
	record, err := newRecord(&CreateRequest{Category: "", Message: "hi", Channel: types.NotificationChannelEmail})
	require.NoError(t, err)
	require.Equal(t, types.NotificationCategory(""), record.Category)

	record, err = newRecord(&CreateRequest{Category: "carrier_pigeon_recall", Message: "hi", Channel: "carrier_pigeon"})
	require.NoError(t, err)
	require.Equal(t, types.NotificationCategory("carrier_pigeon_recall"), record.Category)
	require.Equal(t, types.NotificationChannel("carrier_pigeon"), record.Channel)
}

func TestNewRecord_BroadcastHasNoRecipient(t *testing.T) {
	record, err := newRecord(&CreateRequest{Message: "maintenance tonight", Channel: types.NotificationChannelInternal})
	require.NoError(t, err)
	require.Nil(t, record.MemberID)
	require.Nil(t, record.SellerID)
}

func TestApplyOutcome_Failure(t *testing.T) {
	record := &models.Notification{}
	for i := 1; i <= 3; i++ {
		require.NoError(t, applyOutcome(record, OutcomeFailure, time.Now()))
		require.Equal(t, i, record.EmailRetryCount)
		require.Nil(t, record.EmailSentAt)
	}
}

func TestApplyOutcome_SuccessAfterFailures(t *testing.T) {
	record := &models.Notification{}
	require.NoError(t, applyOutcome(record, OutcomeFailure, time.Now()))
	require.NoError(t, applyOutcome(record, OutcomeFailure, time.Now()))

	require.NoError(t, applyOutcome(record, OutcomeSuccess, time.Now()))
	require.NotNil(t, record.EmailSentAt)
	require.Equal(t, 2, record.EmailRetryCount)
}

func TestApplyOutcome_DeletedRecordRejected(t *testing.T) {
	record := &models.Notification{ID: 7, IsDeleted: true}
	err := applyOutcome(record, OutcomeFailure, time.Now())
	require.ErrorIs(t, err, ErrRecordDeleted)
	require.Equal(t, 0, record.EmailRetryCount)
}

func TestApplyOutcome_UnknownOutcome(t *testing.T) {
	err := applyOutcome(&models.Notification{}, Outcome("perhaps"), time.Now())
	require.ErrorIs(t, err, ErrValidation)
}

func TestSentinels_AreWrapFriendly(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrNotFound)
	require.True(t, errors.Is(err, ErrNotFound))
}

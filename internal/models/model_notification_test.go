package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotification_FreshRecord(t *testing.T) {
	n := &Notification{}
	require.Equal(t, 0, n.EmailRetryCount)
	require.Nil(t, n.EmailSentAt)
	require.False(t, n.Delivered())
	require.True(t, n.Deliverable(3))
}

func TestNotification_FailuresIncrementMonotonically(t *testing.T) {
	n := &Notification{}
	for i := 1; i <= 5; i++ {
		n.MarkSendFailed(time.Now())
		require.Equal(t, i, n.EmailRetryCount)
		require.Nil(t, n.EmailSentAt)
	}
}

func TestNotification_SuccessFreezesRetryState(t *testing.T) {
	n := &Notification{}
	n.MarkSendFailed(time.Now())
	n.MarkSendFailed(time.Now())

	at := time.Now()
	n.MarkSendSucceeded(at)
	require.NotNil(t, n.EmailSentAt)
	require.Equal(t, at, *n.EmailSentAt)
	require.Equal(t, at, n.SentAt)
	require.Equal(t, 2, n.EmailRetryCount)
	require.False(t, n.Deliverable(10))
}

func TestNotification_Deliverable(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		n    Notification
		max  int
		want bool
	}{
		{"fresh", Notification{}, 3, true},
		{"under ceiling", Notification{EmailRetryCount: 2}, 3, true},
		{"at ceiling", Notification{EmailRetryCount: 3}, 3, false},
		{"over ceiling", Notification{EmailRetryCount: 5}, 3, false},
		{"already delivered", Notification{EmailSentAt: &now}, 3, false},
		{"soft deleted", Notification{IsDeleted: true}, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.n.Deliverable(tc.max))
		})
	}
}

func TestNotification_RetryScenario(t *testing.T) {
	// Three failures against a ceiling of three: eligible after two, not after three.
	n := &Notification{}
	n.MarkSendFailed(time.Now())
	n.MarkSendFailed(time.Now())
	require.True(t, n.Deliverable(3))

	n.MarkSendFailed(time.Now())
	require.False(t, n.Deliverable(3))
	require.Nil(t, n.EmailSentAt)
}

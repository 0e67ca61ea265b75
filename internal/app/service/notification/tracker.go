package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hazelshop/admin-backend/internal/models"
	"github.com/hazelshop/admin-backend/pkg/logctx"
	"github.com/hazelshop/admin-backend/pkg/types"
)

// MessageMaxLen bounds the free-text message on a notification.
const MessageMaxLen = 500

// Outcome is the result an external sender reports for one physical delivery
// attempt. Failure is normal data here, never an error.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Tracker owns the delivery lifecycle of notification records: creation,
// attempt bookkeeping, retry eligibility and soft deletion. It does not send
// anything itself and it does not schedule anything; an external worker
// decides when the next attempt happens.
type Tracker struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewTracker(db *gorm.DB, log *zap.SugaredLogger) *Tracker {
	return &Tracker{db: db, log: log}
}

type CreateRequest struct {
	Category     types.NotificationCategory `json:"category"`
	Message      string                     `json:"message"`
	Channel      types.NotificationChannel  `json:"channel"`
	MemberID     *string                    `json:"member_id"`
	SellerID     *string                    `json:"seller_id"`
	EmailAddress string                     `json:"email_address"`
	// EmailStatus defaults to immediate unless explicitly set.
	EmailStatus types.EmailStatus `json:"email_status"`
}

// newRecord validates the request and builds a fresh record. Only the message
// is hard-validated; category and channel are stored verbatim even when this
// build does not recognize them, mirroring the registry's fail-open lookups.
func newRecord(req *CreateRequest) (*models.Notification, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrValidation)
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if len(req.Message) > MessageMaxLen {
		return nil, fmt.Errorf("%w: message exceeds %d bytes", ErrValidation, MessageMaxLen)
	}
	emailStatus := req.EmailStatus
	if emailStatus == "" {
		emailStatus = types.EmailStatusImmediate
	}
	return &models.Notification{
		MemberID:        req.MemberID,
		SellerID:        req.SellerID,
		Category:        req.Category,
		Message:         req.Message,
		Channel:         req.Channel,
		EmailAddress:    req.EmailAddress,
		EmailStatus:     emailStatus,
		EmailRetryCount: 0,
	}, nil
}

// Create persists a fresh record with a zero retry counter and no send time.
func (t *Tracker) Create(ctx context.Context, req *CreateRequest) (*models.Notification, error) {
	record, err := newRecord(req)
	if err != nil {
		return nil, err
	}
	if err := t.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	logctx.FromCtx(ctx, t.log).Infow("notification created",
		"id", record.ID, "category", record.Category, "channel", record.Channel)
	return record, nil
}

// Get loads one record by identity, soft-deleted rows included.
func (t *Tracker) Get(ctx context.Context, id int64) (*models.Notification, error) {
	var record models.Notification
	err := t.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id=%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load notification: %w", err)
	}
	return &record, nil
}

// applyOutcome mutates the record for exactly one physical attempt.
func applyOutcome(record *models.Notification, outcome Outcome, at time.Time) error {
	if record.IsDeleted {
		return fmt.Errorf("%w: id=%d", ErrRecordDeleted, record.ID)
	}
	switch outcome {
	case OutcomeSuccess:
		record.MarkSendSucceeded(at)
	case OutcomeFailure:
		record.MarkSendFailed(at)
	default:
		return fmt.Errorf("%w: outcome=%q", ErrValidation, outcome)
	}
	return nil
}

// RecordAttempt books the outcome of one physical delivery attempt. Each call
// must correspond to exactly one real attempt; the tracker does not
// deduplicate. The row is locked for the duration of the update so concurrent
// attempts against the same record cannot lose a counter increment.
func (t *Tracker) RecordAttempt(ctx context.Context, id int64, outcome Outcome) (*models.Notification, error) {
	var record models.Notification
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("failed to load notification: %w", err)
		}
		if err := applyOutcome(&record, outcome, time.Now()); err != nil {
			return err
		}
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, t.log).Infow("delivery attempt recorded",
		"id", record.ID, "outcome", outcome, "retry_count", record.EmailRetryCount)
	return &record, nil
}

// MayRetry reports retry eligibility for the record under the caller-supplied
// ceiling. The tracker holds no retry policy of its own beyond the comparison.
func (t *Tracker) MayRetry(ctx context.Context, id int64, maxRetries int) (bool, error) {
	record, err := t.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return record.Deliverable(maxRetries), nil
}

// SoftDelete marks the record deleted and drops it out of every pending
// query. Calling it again is a no-op, not an error.
func (t *Tracker) SoftDelete(ctx context.Context, id int64) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.Notification
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id=%d", ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("failed to load notification: %w", err)
		}
		if record.IsDeleted {
			return nil
		}
		record.IsDeleted = true
		return tx.Save(&record).Error
	})
}

// ListPending returns email notifications still eligible for a delivery
// attempt, oldest first. Soft-deleted and already delivered rows never show up.
func (t *Tracker) ListPending(ctx context.Context, maxRetries, limit int) ([]*models.Notification, error) {
	var rows []*models.Notification
	err := t.db.WithContext(ctx).
		Where("channel = ?", types.NotificationChannelEmail).
		Where("is_deleted = ?", false).
		Where("email_sent_at IS NULL").
		Where("email_retry_count < ?", maxRetries).
		Where("email_status = ?", types.EmailStatusImmediate).
		Order("id asc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	return rows, nil
}

package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hazelshop/admin-backend/internal/app/service/status"
	"github.com/hazelshop/admin-backend/internal/models"
	"github.com/hazelshop/admin-backend/pkg/types"
)

func (s *Service) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.WithContext(ctx).First(&payment, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order_id=%s", ErrPaymentNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return &payment, nil
}

// checkPaymentTransition is the payment counterpart of checkOrderTransition.
func (s *Service) checkPaymentTransition(current types.PaymentStatus, target string) (types.PaymentStatus, error) {
	canonical, ok := s.registry.Canonical(types.StatusDomainPayment, target)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a payment status", ErrInvalidTransition, target)
	}
	next := types.PaymentStatus(canonical)
	if !status.CanTransitionPayment(current, next) {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	return next, nil
}

// ChangePaymentStatus moves a payment along its lifecycle, stamping PaidAt
// and RefundedAt on the way through.
func (s *Service) ChangePaymentStatus(ctx context.Context, paymentID, target string) (*models.Payment, error) {
	var payment models.Payment
	var previous types.PaymentStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&payment, "id = ?", paymentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id=%s", ErrPaymentNotFound, paymentID)
		}
		if err != nil {
			return fmt.Errorf("failed to load payment: %w", err)
		}
		next, err := s.checkPaymentTransition(payment.Status, target)
		if err != nil {
			return err
		}
		previous = payment.Status
		payment.Status = next
		now := time.Now()
		switch next {
		case types.PaymentStatusPaid:
			payment.PaidAt = &now
		case types.PaymentStatusRefunded:
			payment.RefundedAt = &now
		}
		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	s.afterStatusChange(ctx, types.StatusDomainPayment, payment.OrderID, payment.MemberID, string(previous), string(payment.Status))
	return &payment, nil
}

package order

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hazelshop/admin-backend/internal/app/service/notification"
	"github.com/hazelshop/admin-backend/internal/app/service/status"
	"github.com/hazelshop/admin-backend/internal/models"
	"github.com/hazelshop/admin-backend/internal/platform/events"
	"github.com/hazelshop/admin-backend/pkg/logctx"
	"github.com/hazelshop/admin-backend/pkg/tool"
	"github.com/hazelshop/admin-backend/pkg/types"
)

// Service is the order/payment management collaborator. It gates every
// requested status change through the registry, enforces the transition
// tables, and fans the accepted change out as a domain event plus a
// notification record.
type Service struct {
	db       *gorm.DB
	log      *zap.SugaredLogger
	registry *status.Registry
	tracker  *notification.Tracker
	events   events.Publisher
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, registry *status.Registry, tracker *notification.Tracker, publisher events.Publisher) *Service {
	return &Service{db: db, log: log, registry: registry, tracker: tracker, events: publisher}
}

type CreateOrderRequest struct {
	MemberID string  `json:"member_id"`
	SellerID *string `json:"seller_id"`
	Currency string  `json:"currency"`
	Amount   int64   `json:"amount"`
}

// CreateOrder opens a Pending order together with its Unpaid payment row.
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if req == nil || req.MemberID == "" || req.Amount <= 0 {
		return nil, fmt.Errorf("%w: member_id and a positive amount are required", ErrInvalidOrder)
	}
	order := &models.Order{
		ID:       tool.GenerateUUIDV7(),
		MemberID: req.MemberID,
		SellerID: req.SellerID,
		Status:   types.OrderStatusPending,
		Currency: req.Currency,
		Amount:   req.Amount,
	}
	payment := &models.Payment{
		ID:       tool.GenerateUUIDV7(),
		OrderID:  order.ID,
		MemberID: req.MemberID,
		Status:   types.PaymentStatusUnpaid,
		Currency: req.Currency,
		Amount:   req.Amount,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("order created", "order_id", order.ID, "member_id", order.MemberID)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id=%s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

// checkOrderTransition resolves the requested target against the order
// vocabulary and the transition table. A code outside the vocabulary is an
// invalid transition, same as an unreachable one.
func (s *Service) checkOrderTransition(current types.OrderStatus, target string) (types.OrderStatus, error) {
	canonical, ok := s.registry.Canonical(types.StatusDomainOrder, target)
	if !ok {
		return "", fmt.Errorf("%w: %q is not an order status", ErrInvalidTransition, target)
	}
	next := types.OrderStatus(canonical)
	if !status.CanTransitionOrder(current, next) {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	return next, nil
}

// ChangeOrderStatus moves an order along its lifecycle. On acceptance the
// change is persisted, published as a domain event and turned into a
// notification record for the member.
func (s *Service) ChangeOrderStatus(ctx context.Context, orderID, target string) (*models.Order, error) {
	var order models.Order
	var previous types.OrderStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, "id = ?", orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id=%s", ErrOrderNotFound, orderID)
		}
		if err != nil {
			return fmt.Errorf("failed to load order: %w", err)
		}
		next, err := s.checkOrderTransition(order.Status, target)
		if err != nil {
			return err
		}
		previous = order.Status
		order.Status = next
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	s.afterStatusChange(ctx, types.StatusDomainOrder, order.ID, order.MemberID, string(previous), string(order.Status))
	return &order, nil
}

// afterStatusChange publishes the domain event and creates the outbound
// notification. Neither failure rolls the accepted status change back; both
// are logged and left to their own recovery paths.
func (s *Service) afterStatusChange(ctx context.Context, domain types.StatusDomain, entityID, memberID, from, to string) {
	log := logctx.FromCtx(ctx, s.log)

	if err := s.events.PublishStatusChanged(ctx, events.StatusChangedEvent{
		Domain:   string(domain),
		EntityID: entityID,
		MemberID: memberID,
		From:     from,
		To:       to,
	}); err != nil {
		log.Errorw("failed to publish status change", "domain", domain, "id", entityID, "err", err)
	}

	category := types.NotificationCategoryOrder
	message := fmt.Sprintf("您的訂單 %s 狀態已更新為「%s」", entityID, s.registry.Label(domain, to))
	if domain == types.StatusDomainPayment {
		category = types.NotificationCategoryPayment
		message = fmt.Sprintf("您的訂單 %s 付款狀態已更新為「%s」", entityID, s.registry.Label(domain, to))
	}
	if _, err := s.tracker.Create(ctx, &notification.CreateRequest{
		Category: category,
		Message:  message,
		Channel:  types.NotificationChannelEmail,
		MemberID: &memberID,
	}); err != nil {
		log.Errorw("failed to create status notification", "domain", domain, "id", entityID, "err", err)
	}
}

package notification

import (
	"context"
	"fmt"

	"eventzen/internal/domain"
	"eventzen/internal/monitoring"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type Service struct {
	repo notificationRepo
	hub  *Hub
}

func NewService(repo notificationRepo, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

type pushPayload struct {
	Type       domain.NotificationType `json:"type"`
	Message    string                  `json:"message"`
	EntityType string                  `json:"entity_type,omitempty"`
	EntityID   int64                   `json:"entity_id,omitempty"`
}

// Create persists the notification first, then attempts the live push. A
// failed push never fails the caller; the record is already durable.
func (s *Service) Create(ctx context.Context, userID int64, t domain.NotificationType, message, entityType string, entityID int64) error {
	n := &domain.Notification{
		UserID:     userID,
		Type:       t,
		Message:    message,
		IsRead:     false,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		delivered := s.hub.SendToUser(userID, pushPayload{
			Type:       t,
			Message:    message,
			EntityType: entityType,
			EntityID:   entityID,
		})
		monitoring.TrackNotificationPush(delivered)
	}
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, userID, bookingID int64, totalAmount float64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifBookingCreated,
		fmt.Sprintf("Your booking #%d was created. Total: %.2f", bookingID, totalAmount),
		"booking",
		bookingID,
	)
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifBookingCancelled,
		fmt.Sprintf("Your booking #%d was cancelled", bookingID),
		"booking",
		bookingID,
	)
}

func (s *Service) NotifyPaymentProcessed(ctx context.Context, userID, bookingID int64, amount float64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifPaymentProcessed,
		fmt.Sprintf("Payment of %.2f for booking #%d was processed", amount, bookingID),
		"booking",
		bookingID,
	)
}

func (s *Service) NotifyPaymentFailed(ctx context.Context, userID, bookingID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifPaymentFailed,
		fmt.Sprintf("Payment for booking #%d failed. You can retry with another card", bookingID),
		"booking",
		bookingID,
	)
}

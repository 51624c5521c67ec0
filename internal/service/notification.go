package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, uid string, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.noteRepo.List(ctx, uid, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int32, uid string) error {
	if err := s.noteRepo.MarkAsRead(ctx, id, uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: notification %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
)

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

func (s *announcementService) Create(ctx context.Context, a *domain.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	return s.announcementRepo.Create(ctx, a)
}

func (s *announcementService) Update(ctx context.Context, a *domain.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	if err := s.announcementRepo.Update(ctx, a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: announcement %d", ErrNotFound, a.ID)
		}
		return err
	}
	return nil
}

func (s *announcementService) Delete(ctx context.Context, id int32) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: announcement %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *announcementService) List(ctx context.Context, page, pageSize int32) ([]domain.Announcement, int32, error) {
	return s.announcementRepo.List(ctx, page, pageSize)
}

func (s *announcementService) ListFor(ctx context.Context, role domain.Role, page, pageSize int32) ([]domain.Announcement, int32, error) {
	// Admins read everything; members and plain users see ALL plus their own
	// audience bucket.
	switch role {
	case domain.RoleAdmin:
		return s.announcementRepo.List(ctx, page, pageSize)
	case domain.RoleMember:
		return s.announcementRepo.ListForAudiences(ctx, []domain.AnnouncementAudience{domain.AudienceAll, domain.AudienceMembers}, page, pageSize)
	default:
		return s.announcementRepo.ListForAudiences(ctx, []domain.AnnouncementAudience{domain.AudienceAll, domain.AudienceUsers}, page, pageSize)
	}
}

func validateAnnouncement(a *domain.Announcement) error {
	if a.Title == "" {
		return fmt.Errorf("%w: announcement title is required", ErrInvalidInput)
	}
	if a.Content == "" {
		return fmt.Errorf("%w: announcement content is required", ErrInvalidInput)
	}
	if a.Priority == "" {
		a.Priority = domain.AnnouncementPriorityLow
	}
	if !domain.ValidAnnouncementPriority(a.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, a.Priority)
	}
	if a.Audience == "" {
		a.Audience = domain.AudienceAll
	}
	if !domain.ValidAnnouncementAudience(a.Audience) {
		return fmt.Errorf("%w: unknown audience %q", ErrInvalidInput, a.Audience)
	}
	return nil
}

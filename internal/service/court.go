package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportnex-backend/internal/cache"
	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/logger"
	"sportnex-backend/internal/repository"
)

type courtService struct {
	courtRepo repository.CourtRepository
	cache     *cache.CourtCache
}

// NewCourtService returns a CourtService. cache may be nil, in which case
// every read hits the repository.
func NewCourtService(courtRepo repository.CourtRepository, courtCache *cache.CourtCache) CourtService {
	return &courtService{courtRepo: courtRepo, cache: courtCache}
}

func (s *courtService) List(ctx context.Context, page, pageSize int32) ([]domain.Court, int32, error) {
	if s.cache != nil {
		courts, total, hit, err := s.cache.GetCourts(ctx, page, pageSize)
		if err != nil {
			logger.Warn("court cache read failed", "error", err)
		} else if hit {
			return courts, total, nil
		}
	}

	courts, total, err := s.courtRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetCourts(ctx, page, pageSize, courts, total); err != nil {
			logger.Warn("court cache write failed", "error", err)
		}
	}
	return courts, total, nil
}

func (s *courtService) Get(ctx context.Context, id int32) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: court %d", ErrNotFound, id)
		}
		return nil, err
	}
	return court, nil
}

func (s *courtService) Create(ctx context.Context, court *domain.Court) error {
	if err := validateCourt(court); err != nil {
		return err
	}
	if err := s.courtRepo.Create(ctx, court); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *courtService) Update(ctx context.Context, court *domain.Court) error {
	if err := validateCourt(court); err != nil {
		return err
	}
	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: court %d", ErrNotFound, court.ID)
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *courtService) Delete(ctx context.Context, id int32) error {
	if err := s.courtRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: court %d", ErrNotFound, id)
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *courtService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("court cache invalidation failed", "error", err)
	}
}

func validateCourt(c *domain.Court) error {
	if c.Name == "" {
		return fmt.Errorf("%w: court name is required", ErrInvalidInput)
	}
	if c.PricePerSessionCents <= 0 {
		return fmt.Errorf("%w: price per session must be positive", ErrInvalidInput)
	}
	if len(c.AvailableSlots) == 0 {
		return fmt.Errorf("%w: at least one available slot is required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(c.AvailableSlots))
	for _, slot := range c.AvailableSlots {
		if slot == "" {
			return fmt.Errorf("%w: empty slot label", ErrInvalidInput)
		}
		if seen[slot] {
			return fmt.Errorf("%w: duplicate slot %q", ErrInvalidInput, slot)
		}
		seen[slot] = true
	}
	return nil
}

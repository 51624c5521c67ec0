package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
	"sportnex-backend/internal/security"
)

type userService struct {
	userRepo    repository.UserRepository
	courtRepo   repository.CourtRepository
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	courtRepo repository.CourtRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *userService) Upsert(ctx context.Context, claims *security.Claims) (*domain.User, error) {
	if claims.UID == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrInvalidInput)
	}

	user := &domain.User{
		UID:      claims.UID,
		Email:    claims.Email,
		Name:     claims.Name,
		PhotoURL: claims.PhotoURL,
		Role:     domain.RoleUser,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByUID(ctx, claims.UID)
}

func (s *userService) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, uid string, update ProfileUpdate) (*domain.User, error) {
	user, err := s.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.PhotoURL != "" {
		user.PhotoURL = update.PhotoURL
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Address != "" {
		user.Address = update.Address
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListMembers(ctx context.Context, search string, page, pageSize int32) ([]domain.User, int32, error) {
	if search != "" {
		return s.userRepo.Search(ctx, search, page, pageSize)
	}
	return s.userRepo.List(ctx, page, pageSize)
}

func (s *userService) ChangeRole(ctx context.Context, uid string, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	if err := s.userRepo.UpdateRole(ctx, uid, role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
		}
		return nil, err
	}
	return s.userRepo.GetByUID(ctx, uid)
}

func (s *userService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}
	var err error

	if stats.TotalCourts, err = s.courtRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalMembers, err = s.userRepo.CountByRole(ctx, domain.RoleMember); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.bookingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.bookingRepo.CountByStatus(ctx, domain.BookingStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedBookings, err = s.bookingRepo.CountByStatus(ctx, domain.BookingStatusApproved); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = s.bookingRepo.CountByStatus(ctx, domain.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	if stats.CompletedPayments, err = s.paymentRepo.CountCompleted(ctx); err != nil {
		return nil, err
	}
	if stats.RevenueCents, err = s.paymentRepo.RevenueCents(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

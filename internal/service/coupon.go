package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/repository"
)

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

func (s *couponService) Create(ctx context.Context, coupon *domain.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	return s.couponRepo.Create(ctx, coupon)
}

func (s *couponService) Update(ctx context.Context, coupon *domain.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: coupon %d", ErrNotFound, coupon.ID)
		}
		return err
	}
	return nil
}

func (s *couponService) Delete(ctx context.Context, id int32) error {
	if err := s.couponRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: coupon %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *couponService) List(ctx context.Context, page, pageSize int32) ([]domain.Coupon, int32, error) {
	return s.couponRepo.List(ctx, page, pageSize)
}

func (s *couponService) Validate(ctx context.Context, code string) (*domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidCoupon)
	}

	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: code %q not recognized", ErrInvalidCoupon, code)
		}
		return nil, err
	}
	if !coupon.Usable(time.Now()) {
		return nil, fmt.Errorf("%w: code %q is expired or inactive", ErrInvalidCoupon, code)
	}
	return coupon, nil
}

func validateCoupon(c *domain.Coupon) error {
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	if c.DiscountPercent <= 0 || c.DiscountPercent > 100 {
		return fmt.Errorf("%w: discount percent must be in (0, 100]", ErrInvalidInput)
	}
	if c.ValidFrom != nil && c.ValidTo != nil && c.ValidTo.Before(*c.ValidFrom) {
		return fmt.Errorf("%w: valid_to is before valid_from", ErrInvalidInput)
	}
	return nil
}

// Package catalog serves the treatment catalog and per-date slot availability.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]models.ServiceSummary, error)
	Availability(ctx context.Context, date string) ([]models.Service, error)
}

// BookingsByDate is the slice of the booking store availability needs.
type BookingsByDate interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// DefaultCatalogService reads services from the store, optionally through a
// cache. Bookings are always read live.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Bookings BookingsByDate
	Cache    Cache
	Logger   *zap.Logger
}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.ServiceSummary, error) {
	var names []models.ServiceSummary
	if s.fromCache(ctx, namesCacheKey, &names) {
		return names, nil
	}
	names, err := s.Services.GetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if names == nil {
		names = []models.ServiceSummary{}
	}
	s.toCache(ctx, namesCacheKey, names)
	return names, nil
}

func (s *DefaultCatalogService) Availability(ctx context.Context, date string) ([]models.Service, error) {
	var services []models.Service
	if !s.fromCache(ctx, servicesCacheKey, &services) {
		var err error
		services, err = s.Services.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load services: %w", err)
		}
		s.toCache(ctx, servicesCacheKey, services)
	}

	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %q: %w", date, err)
	}
	return ComputeAvailability(services, bookings), nil
}

// fromCache decodes key into dst. Cache failures are logged and treated as a miss.
func (s *DefaultCatalogService) fromCache(ctx context.Context, key string, dst any) bool {
	if s.Cache == nil {
		return false
	}
	data, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		s.logger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger().Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *DefaultCatalogService) toCache(ctx context.Context, key string, v any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data); err != nil {
		s.logger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}

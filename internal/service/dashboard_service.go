package service

import (
	"context"
	"time"

	"go-delivery-api/internal/repository"
)

type DashboardService interface {
	GetDashboardStats(ctx context.Context, storeID *uint) (*repository.DashboardStats, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	now           func() time.Time
}

func NewDashboardService(dashboardRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo, now: time.Now}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context, storeID *uint) (*repository.DashboardStats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.dashboardRepo.GetStats(ctx, storeID, today)
}

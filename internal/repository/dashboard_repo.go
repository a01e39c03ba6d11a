package repository

import (
	"context"
	"time"

	"go-delivery-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold marks products with fewer units as low stock
const LowStockThreshold = 10

// DashboardStats feeds the overview cards
type DashboardStats struct {
	TotalProducts  int64           `json:"totalProducts"`
	ActiveProducts int64           `json:"activeProducts"`
	LowStockCount  int64           `json:"lowStockCount"`
	TotalValuation decimal.Decimal `json:"totalValuation"`
	RoutesToday    int64           `json:"routesToday"`
}

type DashboardRepository interface {
	GetStats(ctx context.Context, storeID *uint, day time.Time) (*DashboardStats, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

// GetStats aggregates product and route figures, optionally for one store.
// day must be truncated to midnight.
func (r *dashboardRepo) GetStats(ctx context.Context, storeID *uint, day time.Time) (*DashboardStats, error) {
	var stats DashboardStats

	products := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Product{})
		if storeID != nil {
			q = q.Where("store_id = ?", *storeID)
		}
		return q
	}

	if err := products().Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := products().Where("active = ?", true).Count(&stats.ActiveProducts).Error; err != nil {
		return nil, err
	}
	if err := products().Where("stock < ?", LowStockThreshold).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := products().Select("COALESCE(SUM(stock * price), 0)").Row().Scan(&stats.TotalValuation); err != nil {
		return nil, err
	}

	routes := r.db.WithContext(ctx).Model(&model.Route{}).
		Where("scheduled_date >= ? AND scheduled_date < ?", day, day.Add(24*time.Hour))
	if storeID != nil {
		routes = routes.Where("store_id = ?", *storeID)
	}
	if err := routes.Count(&stats.RoutesToday).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

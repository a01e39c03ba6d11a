package repository

import (
	"context"
	"time"

	"go-delivery-api/internal/listing"
	"go-delivery-api/internal/model"

	"gorm.io/gorm"
)

// RouteFilter narrows route listings. Day, when set, matches routes scheduled
// within [Day, Day+24h).
type RouteFilter struct {
	StoreID *uint
	Day     *time.Time
}

type RouteRepository interface {
	Create(ctx context.Context, route *model.Route) error
	List(ctx context.Context, filter RouteFilter, page listing.Page) ([]model.Route, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Route, error)
}

type routeRepo struct {
	db *gorm.DB
}

func NewRouteRepo(db *gorm.DB) RouteRepository {
	return &routeRepo{db}
}

// Create inserts the route header then each stop as given
func (r *routeRepo) Create(ctx context.Context, route *model.Route) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stops := route.Stops
		if err := tx.Omit("Stops").Create(route).Error; err != nil {
			return err
		}
		for i := range stops {
			stops[i].RouteID = route.ID
			if err := tx.Create(&stops[i]).Error; err != nil {
				return err
			}
		}
		route.Stops = stops
		return nil
	})
}

func routeQuery(db *gorm.DB, filter RouteFilter) *gorm.DB {
	q := db.Model(&model.Route{}).Scopes(listing.Equal("store_id", filter.StoreID))
	if filter.Day != nil {
		q = q.Where("scheduled_date >= ? AND scheduled_date < ?", *filter.Day, filter.Day.Add(24*time.Hour))
	}
	return q
}

func (r *routeRepo) List(ctx context.Context, filter RouteFilter, page listing.Page) ([]model.Route, int64, error) {
	db := r.db.WithContext(ctx)

	routes := []model.Route{}
	total, err := listing.FindPage(routeQuery(db, filter), "scheduled_date DESC, id DESC", page, &routes)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachStops(db, routes); err != nil {
		return nil, 0, err
	}
	return routes, total, nil
}

// attachStops loads the stops of every route in one query, ordered by stop_order
func (r *routeRepo) attachStops(db *gorm.DB, routes []model.Route) error {
	if len(routes) == 0 {
		return nil
	}

	ids := make([]uint, len(routes))
	index := make(map[uint]int, len(routes))
	for i := range routes {
		ids[i] = routes[i].ID
		index[routes[i].ID] = i
		routes[i].Stops = []model.RouteStop{}
	}

	var stops []model.RouteStop
	if err := db.Where("route_id IN ?", ids).Order("route_id ASC, stop_order ASC").Find(&stops).Error; err != nil {
		return err
	}
	for _, s := range stops {
		i := index[s.RouteID]
		routes[i].Stops = append(routes[i].Stops, s)
	}
	return nil
}

func (r *routeRepo) FindByID(ctx context.Context, id uint) (*model.Route, error) {
	var route model.Route
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stop_order ASC")
		}).
		First(&route, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	if route.Stops == nil {
		route.Stops = []model.RouteStop{}
	}
	return &route, nil
}

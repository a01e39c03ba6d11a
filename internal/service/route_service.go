package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-delivery-api/internal/listing"
	"go-delivery-api/internal/model"
	"go-delivery-api/internal/repository"
	"go-delivery-api/pkg/validator"

	"github.com/araddon/dateparse"
	"gorm.io/gorm"
)

type SaveRouteRequest struct {
	Name              string             `json:"name" validate:"required,max=255"`
	Description       string             `json:"description"`
	VehicleID         *uint              `json:"vehicleId"`
	Stops             []RouteStopRequest `json:"stops" validate:"dive"`
	EstimatedDistance float64            `json:"estimatedDistance" validate:"gte=0"`
	EstimatedDuration float64            `json:"estimatedDuration" validate:"gte=0"`
	ScheduledDate     string             `json:"scheduledDate" validate:"required,date_any"`
	StoreID           *uint              `json:"storeId"`
}

type RouteStopRequest struct {
	OrderID              *uint   `json:"orderId"`
	Address              string  `json:"address" validate:"max=255"`
	Latitude             float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude            float64 `json:"longitude" validate:"gte=-180,lte=180"`
	EstimatedArrivalTime string  `json:"estimatedArrivalTime" validate:"date_any"`
}

type RoutePage struct {
	Routes     []model.Route      `json:"routes"`
	Pagination listing.Pagination `json:"pagination"`
}

type RouteService interface {
	SaveRoute(ctx context.Context, req *SaveRouteRequest) (*model.Route, error)
	ListRoutes(ctx context.Context, filter repository.RouteFilter, page listing.Page) (*RoutePage, error)
	GetRoute(ctx context.Context, id uint) (*model.Route, error)
}

type routeService struct {
	routeRepo repository.RouteRepository
	events    Publisher
}

func NewRouteService(routeRepo repository.RouteRepository, events Publisher) RouteService {
	return &routeService{routeRepo: routeRepo, events: orNop(events)}
}

// ParseDay reads a calendar date in any common layout and returns its UTC midnight.
// A blank value yields nil.
func ParseDay(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return nil, badRequest("invalid date %q", raw)
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}

func (s *routeService) SaveRoute(ctx context.Context, req *SaveRouteRequest) (*model.Route, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, badRequest("%s", errs[0].Error())
	}

	scheduled, err := dateparse.ParseIn(req.ScheduledDate, time.UTC)
	if err != nil {
		return nil, badRequest("invalid scheduledDate %q", req.ScheduledDate)
	}

	route := &model.Route{
		Name:              req.Name,
		Description:       req.Description,
		VehicleID:         req.VehicleID,
		EstimatedDistance: req.EstimatedDistance,
		EstimatedDuration: req.EstimatedDuration,
		ScheduledDate:     scheduled.UTC(),
		StoreID:           req.StoreID,
		Stops:             make([]model.RouteStop, 0, len(req.Stops)),
	}

	for i, stop := range req.Stops {
		rs := model.RouteStop{
			OrderID:   stop.OrderID,
			Address:   stop.Address,
			Latitude:  stop.Latitude,
			Longitude: stop.Longitude,
			StopOrder: i,
		}
		if stop.EstimatedArrivalTime != "" {
			eta, err := dateparse.ParseIn(stop.EstimatedArrivalTime, time.UTC)
			if err != nil {
				return nil, badRequest("invalid estimatedArrivalTime for stop %d", i)
			}
			eta = eta.UTC()
			rs.EstimatedArrivalTime = &eta
		}
		route.Stops = append(route.Stops, rs)
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("save route: %w", err)
	}

	s.events.Publish(EventRouteSaved, route)
	return route, nil
}

func (s *routeService) ListRoutes(ctx context.Context, filter repository.RouteFilter, page listing.Page) (*RoutePage, error) {
	routes, total, err := s.routeRepo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return &RoutePage{
		Routes:     routes,
		Pagination: listing.NewPagination(total, page),
	}, nil
}

func (s *routeService) GetRoute(ctx context.Context, id uint) (*model.Route, error) {
	route, err := s.routeRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find route %d: %w", id, err)
	}
	return route, nil
}

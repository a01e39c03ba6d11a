package service

import (
	"context"
	"time"

	"go-delivery-api/internal/maps"
	"go-delivery-api/pkg/validator"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

const (
	solveWindow         = 24 * time.Hour
	deliveryDuration    = 300 // seconds spent at each stop
	defaultMaxLoad      = 1000
	defaultDemand       = 1
	loadDimension       = "weight"
	defaultTravelMode   = "driving"
	optimizeSolvingMode = "SOLVE"
)

type OptimizeVehicle struct {
	ID        interface{} `json:"id" validate:"required"`
	MaxWeight float64     `json:"maxWeight" validate:"gte=0"`
}

type DeliveryLocation struct {
	ID        interface{} `json:"id" validate:"required"`
	Latitude  float64     `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64     `json:"longitude" validate:"gte=-180,lte=180"`
	Weight    float64     `json:"weight" validate:"gte=0"`
}

type DeliveryWindow struct {
	Start string `json:"start" validate:"required,date_any"`
	End   string `json:"end" validate:"required,date_any"`
}

type OptimizeRoutesRequest struct {
	Vehicles          []OptimizeVehicle  `json:"vehicles" validate:"required,min=1,dive"`
	DeliveryLocations []DeliveryLocation `json:"deliveryLocations" validate:"required,min=1,dive"`
	Depot             *maps.LatLng       `json:"depot" validate:"required"`
	TimeWindows       *DeliveryWindow    `json:"timeWindows" validate:"omitempty"`
}

type RouteInfoRequest struct {
	Origin      *maps.LatLng  `json:"origin" validate:"required"`
	Destination *maps.LatLng  `json:"destination" validate:"required"`
	Waypoints   []maps.LatLng `json:"waypoints"`
	Mode        string        `json:"mode" validate:"omitempty,oneof=driving walking bicycling transit"`
}

type GeocodeRequest struct {
	Address string `json:"address" validate:"required"`
}

type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// PlanningService shapes requests for the mapping APIs and relays their answers
type PlanningService interface {
	OptimizeRoutes(ctx context.Context, req *OptimizeRoutesRequest) (*maps.OptimizeResult, error)
	RouteInfo(ctx context.Context, req *RouteInfoRequest) (*maps.DirectionsResult, error)
	Geocode(ctx context.Context, req *GeocodeRequest) (*maps.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, req *ReverseGeocodeRequest) (*maps.GeocodeResult, error)
}

type planningService struct {
	client maps.Client
	now    func() time.Time
}

func NewPlanningService(client maps.Client) PlanningService {
	return &planningService{client: client, now: time.Now}
}

// BuildOptimizeRequest assembles the fleet model: a 24 hour solve window from
// now, depot-anchored vehicles and one delivery per location.
func BuildOptimizeRequest(req *OptimizeRoutesRequest, now time.Time) (*maps.OptimizeRequest, error) {
	var windows []maps.TimeWindow
	if req.TimeWindows != nil {
		start, err := dateparse.ParseAny(req.TimeWindows.Start)
		if err != nil {
			return nil, badRequest("invalid timeWindows.start %q", req.TimeWindows.Start)
		}
		end, err := dateparse.ParseAny(req.TimeWindows.End)
		if err != nil {
			return nil, badRequest("invalid timeWindows.end %q", req.TimeWindows.End)
		}
		windows = []maps.TimeWindow{{
			StartTime: maps.Seconds{Seconds: start.Unix()},
			EndTime:   maps.Seconds{Seconds: end.Unix()},
		}}
	} else {
		windows = []maps.TimeWindow{}
	}

	depot := *req.Depot
	vehicles := make([]maps.Vehicle, 0, len(req.Vehicles))
	for _, v := range req.Vehicles {
		maxLoad := v.MaxWeight
		if maxLoad == 0 {
			maxLoad = defaultMaxLoad
		}
		vehicles = append(vehicles, maps.Vehicle{
			VehicleID:     cast.ToString(v.ID),
			LoadLimits:    map[string]maps.LoadLimit{loadDimension: {MaxLoad: maxLoad}},
			StartLocation: depot,
			EndLocation:   depot,
		})
	}

	shipments := make([]maps.Shipment, 0, len(req.DeliveryLocations))
	for _, loc := range req.DeliveryLocations {
		demand := loc.Weight
		if demand == 0 {
			demand = defaultDemand
		}
		shipments = append(shipments, maps.Shipment{
			ShipmentID: cast.ToString(loc.ID),
			Deliveries: []maps.Delivery{{
				ArrivalLocation: maps.LatLng{Latitude: loc.Latitude, Longitude: loc.Longitude},
				Duration:        maps.Seconds{Seconds: deliveryDuration},
				TimeWindows:     windows,
			}},
			LoadDemands: map[string]maps.Load{loadDimension: {Amount: demand}},
		})
	}

	start := now.Unix()
	return &maps.OptimizeRequest{
		Model: maps.FleetModel{
			GlobalStartTime: maps.Seconds{Seconds: start},
			GlobalEndTime:   maps.Seconds{Seconds: start + int64(solveWindow/time.Second)},
			Vehicles:        vehicles,
			Shipments:       shipments,
		},
		SolvingMode: optimizeSolvingMode,
	}, nil
}

func (s *planningService) OptimizeRoutes(ctx context.Context, req *OptimizeRoutesRequest) (*maps.OptimizeResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, badRequest("%s", errs[0].Error())
	}
	payload, err := BuildOptimizeRequest(req, s.now())
	if err != nil {
		return nil, err
	}
	return s.client.OptimizeRoutes(ctx, payload)
}

func (s *planningService) RouteInfo(ctx context.Context, req *RouteInfoRequest) (*maps.DirectionsResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, badRequest("%s", errs[0].Error())
	}
	mode := req.Mode
	if mode == "" {
		mode = defaultTravelMode
	}
	return s.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      *req.Origin,
		Destination: *req.Destination,
		Waypoints:   req.Waypoints,
		Mode:        mode,
	})
}

func (s *planningService) Geocode(ctx context.Context, req *GeocodeRequest) (*maps.GeocodeResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, badRequest("%s", errs[0].Error())
	}
	return s.client.Geocode(ctx, req.Address)
}

func (s *planningService) ReverseGeocode(ctx context.Context, req *ReverseGeocodeRequest) (*maps.GeocodeResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, badRequest("%s", errs[0].Error())
	}
	return s.client.ReverseGeocode(ctx, maps.LatLng{Latitude: *req.Latitude, Longitude: *req.Longitude})
}

// Package maps talks to the external fleet-routing, directions and geocoding
// APIs. It shapes nothing: callers build the payloads, and responses are
// relayed as raw JSON.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
)

// Client is the routing/geocoding capability used by the planning service
type Client interface {
	OptimizeRoutes(ctx context.Context, req *OptimizeRequest) (*OptimizeResult, error)
	Directions(ctx context.Context, req *DirectionsRequest) (*DirectionsResult, error)
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
	ReverseGeocode(ctx context.Context, at LatLng) (*GeocodeResult, error)
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l LatLng) String() string {
	return fmt.Sprintf("%v,%v", l.Latitude, l.Longitude)
}

// Seconds is the {"seconds": n} shape used for both timestamps and durations
type Seconds struct {
	Seconds int64 `json:"seconds"`
}

type OptimizeRequest struct {
	Model       FleetModel `json:"model"`
	SolvingMode string     `json:"solvingMode"`
}

type FleetModel struct {
	GlobalStartTime Seconds    `json:"globalStartTime"`
	GlobalEndTime   Seconds    `json:"globalEndTime"`
	Vehicles        []Vehicle  `json:"vehicles"`
	Shipments       []Shipment `json:"shipments"`
}

type Vehicle struct {
	VehicleID     string               `json:"vehicleId"`
	LoadLimits    map[string]LoadLimit `json:"loadLimits"`
	StartLocation LatLng               `json:"startLocation"`
	EndLocation   LatLng               `json:"endLocation"`
}

type LoadLimit struct {
	MaxLoad float64 `json:"maxLoad"`
}

type Shipment struct {
	ShipmentID  string          `json:"shipmentId"`
	Deliveries  []Delivery      `json:"deliveries"`
	LoadDemands map[string]Load `json:"loadDemands"`
}

type Delivery struct {
	ArrivalLocation LatLng       `json:"arrivalLocation"`
	Duration        Seconds      `json:"duration"`
	TimeWindows     []TimeWindow `json:"timeWindows"`
}

type TimeWindow struct {
	StartTime Seconds `json:"startTime"`
	EndTime   Seconds `json:"endTime"`
}

type Load struct {
	Amount float64 `json:"amount"`
}

type OptimizeResult struct {
	Routes  json.RawMessage `json:"routes"`
	Metrics json.RawMessage `json:"metrics"`
}

type DirectionsRequest struct {
	Origin      LatLng
	Destination LatLng
	Waypoints   []LatLng
	Mode        string
}

type DirectionsResult struct {
	Routes        json.RawMessage `json:"routes"`
	TotalDistance float64         `json:"distance"` // meters, first route
	TotalDuration float64         `json:"duration"` // seconds, first route
	Status        string          `json:"status"`
}

type GeocodeResult struct {
	Results json.RawMessage `json:"results"`
	Status  string          `json:"status"`
}

// UpstreamError reports a failed call to a mapping API. Details holds the
// upstream payload when one was received, otherwise the transport error text.
type UpstreamError struct {
	Op      string
	Status  int
	Details interface{}
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: upstream responded %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: upstream unreachable: %v", e.Op, e.Details)
}

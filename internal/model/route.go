package model

import "time"

// Route is a planned delivery run for one vehicle on one date
type Route struct {
	BaseModel
	Name              string      `gorm:"type:varchar(255);not null" json:"name"`
	Description       string      `gorm:"type:text" json:"description"`
	VehicleID         *uint       `json:"vehicleId"`
	EstimatedDistance float64     `json:"estimatedDistance"` // meters
	EstimatedDuration float64     `json:"estimatedDuration"` // seconds
	ScheduledDate     time.Time   `gorm:"index;not null" json:"scheduledDate"`
	StoreID           *uint       `gorm:"index" json:"storeId"`
	Stops             []RouteStop `gorm:"foreignKey:RouteID" json:"stops"`
}

// RouteStop is one delivery point. StopOrder is assigned from the submitted
// order starting at 0 and never rewritten.
type RouteStop struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	RouteID              uint       `gorm:"index;not null" json:"routeId"`
	OrderID              *uint      `json:"orderId"`
	Address              string     `gorm:"type:varchar(255)" json:"address"`
	Latitude             float64    `json:"latitude"`
	Longitude            float64    `json:"longitude"`
	StopOrder            int        `gorm:"not null" json:"stopOrder"`
	EstimatedArrivalTime *time.Time `json:"estimatedArrivalTime"`
}

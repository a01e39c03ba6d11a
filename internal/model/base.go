package model

import "time"

// BaseModel carries the auto-increment ID and timestamps shared by every table
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// All returns every model for AutoMigrate, parents first
func All() []interface{} {
	return []interface{}{
		&User{}, &Store{}, &Category{}, &Product{}, &Route{}, &RouteStop{},
	}
}

package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	Active      bool            `gorm:"not null;index" json:"active"`

	// Object storage reference, both nil when the product has no image
	ImageURL *string `gorm:"type:varchar(512)" json:"imageUrl"`
	ImageKey *string `gorm:"type:varchar(255)" json:"imageKey"`

	CategoryID *uint     `gorm:"index" json:"productsCategoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
	StoreID    *uint     `gorm:"index" json:"storeId"`
	Store      *Store    `gorm:"foreignKey:StoreID" json:"-"`
}

// ProductColumns are overwritten in full on every update
var ProductColumns = []string{
	"name", "description", "price", "stock", "active",
	"image_url", "image_key", "category_id", "store_id",
}

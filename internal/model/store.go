package model

// Store is a shop owned by a user
type Store struct {
	BaseModel
	UserID    uint    `gorm:"index;not null" json:"userId"`
	User      *User   `gorm:"foreignKey:UserID" json:"-"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Address   string  `gorm:"type:varchar(255)" json:"address"`
	Phone     string  `gorm:"type:varchar(30)" json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

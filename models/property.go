package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CategoryCamping = "camping"
	CategoryCottage = "cottage"
	CategoryVilla   = "villa"
)

// Categories is the fixed category enumeration, in seed order.
var Categories = []string{CategoryCamping, CategoryCottage, CategoryVilla}

const (
	StatusVerified   = "Verified"
	StatusPending    = "Pending"
	StatusUnverified = "Unverified"
)

// Property is one rentable listing. The list columns hold a JSON array of
// strings and are never NULL.
type Property struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Slug        string  `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Category    string  `gorm:"size:32;not null;index" json:"category"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	MapLink     string  `gorm:"column:map_link;type:text" json:"map_link"`
	Rating      float64 `gorm:"type:decimal(2,1)" json:"rating"`
	Price       string  `gorm:"size:100;not null" json:"price"`
	PriceNote   string  `gorm:"column:price_note;size:255;not null" json:"price_note"`
	Capacity    int     `gorm:"not null" json:"capacity"`

	CheckInTime  string `gorm:"column:check_in_time;size:50" json:"check_in_time"`
	CheckOutTime string `gorm:"column:check_out_time;size:50" json:"check_out_time"`
	Status       string `gorm:"size:20" json:"status"`

	IsActive     bool `gorm:"column:is_active;index" json:"is_active"`
	IsAvailable  bool `gorm:"column:is_available" json:"is_available"`
	IsTopSelling bool `gorm:"column:is_top_selling" json:"is_top_selling"`

	Contact     string `gorm:"size:50" json:"contact"`
	OwnerMobile string `gorm:"column:owner_mobile;size:50" json:"owner_mobile"`

	Amenities  datatypes.JSON `gorm:"type:text;not null" json:"-"`
	Activities datatypes.JSON `gorm:"type:text;not null" json:"-"`
	Highlights datatypes.JSON `gorm:"type:text;not null" json:"-"`
	Policies   datatypes.JSON `gorm:"type:text;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images"`
}

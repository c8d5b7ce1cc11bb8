package models

// PropertyImage belongs to exactly one property. DisplayOrder is the
// zero-based position in the list supplied at write time.
type PropertyImage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PropertyID   uint   `gorm:"column:property_id;not null;index" json:"-"`
	ImageURL     string `gorm:"column:image_url;type:text;not null" json:"image_url"`
	DisplayOrder int    `gorm:"column:display_order;not null" json:"display_order"`
}

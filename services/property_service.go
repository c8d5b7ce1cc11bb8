package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"looncamp-backend/models"

	"gorm.io/gorm"
)

const (
	defaultRating       = 4.5
	defaultCheckInTime  = "2:00 PM"
	defaultCheckOutTime = "11:00 AM"
	defaultContact      = "+91 8669505727"
)

// toggleableFields are the only flags ToggleField may touch.
var toggleableFields = map[string]bool{
	"is_active":      true,
	"is_top_selling": true,
	"is_available":   true,
}

// PropertyService owns the properties and property_images tables.
type PropertyService struct {
	DB         *gorm.DB
	Categories *CategoryService
}

func NewPropertyService(db *gorm.DB, categories *CategoryService) *PropertyService {
	return &PropertyService{DB: db, Categories: categories}
}

// PublicListing is the public list plus the closure state of each category.
type PublicListing struct {
	Properties       []Property                 `json:"data"`
	CategorySettings map[string]CategoryClosure `json:"categorySettings"`
}

func withOrderedImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("display_order ASC, id ASC")
	})
}

func toProperties(rows []models.Property) []Property {
	out := make([]Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, newProperty(row))
	}
	return out
}

// ListAll returns every property, newest first.
func (s *PropertyService) ListAll(ctx context.Context) ([]Property, error) {
	var rows []models.Property
	err := withOrderedImages(s.DB.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return toProperties(rows), nil
}

// ListPublic returns active properties, available and top selling first,
// together with the category closure map. Closed categories are not filtered.
func (s *PropertyService) ListPublic(ctx context.Context) (PublicListing, error) {
	closures, err := s.Categories.Closures(ctx)
	if err != nil {
		return PublicListing{}, err
	}

	var rows []models.Property
	err = withOrderedImages(s.DB.WithContext(ctx)).
		Where("is_active = ?", true).
		Order("is_available DESC, is_top_selling DESC, created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return PublicListing{}, fmt.Errorf("list public properties: %w", err)
	}

	return PublicListing{Properties: toProperties(rows), CategorySettings: closures}, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id uint) (Property, error) {
	var row models.Property
	err := withOrderedImages(s.DB.WithContext(ctx)).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Property{}, ErrNotFound
		}
		return Property{}, fmt.Errorf("get property %d: %w", id, err)
	}
	return newProperty(row), nil
}

// GetPublicBySlug only finds active properties.
func (s *PropertyService) GetPublicBySlug(ctx context.Context, slug string) (Property, error) {
	var row models.Property
	err := withOrderedImages(s.DB.WithContext(ctx)).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Property{}, ErrNotFound
		}
		return Property{}, fmt.Errorf("get property by slug %q: %w", slug, err)
	}
	return newProperty(row), nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func imageRows(propertyID uint, urls []string) []models.PropertyImage {
	rows := make([]models.PropertyImage, 0, len(urls))
	for i, url := range urls {
		rows = append(rows, models.PropertyImage{PropertyID: propertyID, ImageURL: url, DisplayOrder: i})
	}
	return rows
}

// Create inserts the property and its images in one transaction.
func (s *PropertyService) Create(ctx context.Context, in PropertyInput) (CreatedProperty, error) {
	if err := in.validate(); err != nil {
		return CreatedProperty{}, err
	}

	title := strings.TrimSpace(in.Title)
	rating := defaultRating
	if in.Rating != nil {
		rating = *in.Rating
	}
	images, err := cleanImages(in.Images)
	if err != nil {
		return CreatedProperty{}, err
	}

	log.Printf("➡️ PropertyService.Create title=%q category=%s images=%d", title, in.Category, len(images))

	row := models.Property{
		Title:        title,
		Slug:         Slugify(title),
		Description:  in.Description,
		Category:     in.Category,
		Location:     in.Location,
		MapLink:      in.MapLink,
		Rating:       rating,
		Price:        in.Price,
		PriceNote:    in.PriceNote,
		Capacity:     in.Capacity,
		CheckInTime:  stringOr(in.CheckInTime, defaultCheckInTime),
		CheckOutTime: stringOr(in.CheckOutTime, defaultCheckOutTime),
		Status:       stringOr(in.Status, models.StatusVerified),
		IsTopSelling: boolOr(in.IsTopSelling, false),
		IsActive:     boolOr(in.IsActive, true),
		IsAvailable:  boolOr(in.IsAvailable, true),
		Contact:      stringOr(in.Contact, defaultContact),
		OwnerMobile:  in.OwnerMobile,
		Amenities:    encodeList(in.Amenities),
		Activities:   encodeList(in.Activities),
		Highlights:   encodeList(in.Highlights),
		Policies:     encodeList(in.Policies),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Create(&row).Error; err != nil {
			return err
		}
		if len(images) > 0 {
			if err := tx.Create(imageRows(row.ID, images)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return CreatedProperty{}, ErrDuplicateTitle
		}
		return CreatedProperty{}, fmt.Errorf("create property: %w", err)
	}

	log.Printf("⬅️ PropertyService.Create ok id=%d slug=%s", row.ID, row.Slug)
	return CreatedProperty{ID: row.ID, Slug: row.Slug}, nil
}

func (s *PropertyService) exists(ctx context.Context, id uint) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check property %d: %w", id, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// Update applies only the fields present in the patch. A non-nil image list
// replaces the whole image set.
func (s *PropertyService) Update(ctx context.Context, id uint, patch PropertyPatch) error {
	updates, err := patch.columns()
	if err != nil {
		return err
	}
	var images []string
	if patch.Images != nil {
		if images, err = cleanImages(*patch.Images); err != nil {
			return err
		}
	}
	if err := s.exists(ctx, id); err != nil {
		return err
	}
	updates["updated_at"] = time.Now()

	log.Printf("➡️ PropertyService.Update id=%d fields=%d replaceImages=%t", id, len(updates), patch.Images != nil)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Property{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if patch.Images == nil {
			return nil
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if len(images) > 0 {
			if err := tx.Create(imageRows(id, images)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTitle
		}
		return fmt.Errorf("update property %d: %w", id, err)
	}
	return nil
}

// Delete removes the property and its images.
func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	var deleted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Property{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete property %d: %w", id, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	log.Printf("✅ Property ID %d deleted.", id)
	return nil
}

// ToggleField sets one of is_active, is_top_selling, is_available.
func (s *PropertyService) ToggleField(ctx context.Context, id uint, field string, value bool) error {
	if !toggleableFields[field] {
		return invalid("Invalid field. Only is_active, is_top_selling and is_available can be toggled.")
	}
	if err := s.exists(ctx, id); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{field: value, "updated_at": time.Now()}).Error
	if err != nil {
		return fmt.Errorf("toggle %s on property %d: %w", field, id, err)
	}
	return nil
}

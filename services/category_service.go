package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"looncamp-backend/models"

	"gorm.io/gorm"
)

// CategoryClosure is the public view of one category's closure state.
type CategoryClosure struct {
	IsClosed bool   `json:"is_closed"`
	Reason   string `json:"reason"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// CategorySettingsInput replaces the closure state of a category.
type CategorySettingsInput struct {
	IsClosed     bool   `json:"is_closed"`
	ClosedReason string `json:"closed_reason"`
	ClosedFrom   string `json:"closed_from"`
	ClosedTo     string `json:"closed_to"`
}

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) List(ctx context.Context) ([]models.CategorySetting, error) {
	var settings []models.CategorySetting
	if err := s.DB.WithContext(ctx).Order("category ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("list category settings: %w", err)
	}
	return settings, nil
}

// Closures maps each category to its closure state.
func (s *CategoryService) Closures(ctx context.Context) (map[string]CategoryClosure, error) {
	settings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]CategoryClosure, len(settings))
	for _, setting := range settings {
		out[setting.Category] = CategoryClosure{
			IsClosed: setting.IsClosed,
			Reason:   setting.ClosedReason,
			From:     setting.ClosedFrom,
			To:       setting.ClosedTo,
		}
	}
	return out, nil
}

// Update overwrites the closure state of an existing category row.
func (s *CategoryService) Update(ctx context.Context, category string, in CategorySettingsInput) (models.CategorySetting, error) {
	db := s.DB.WithContext(ctx)

	var setting models.CategorySetting
	if err := db.Where("category = ?", category).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CategorySetting{}, ErrNotFound
		}
		return models.CategorySetting{}, fmt.Errorf("get category %s: %w", category, err)
	}

	setting.IsClosed = in.IsClosed
	setting.ClosedReason = in.ClosedReason
	setting.ClosedFrom = in.ClosedFrom
	setting.ClosedTo = in.ClosedTo
	setting.UpdatedAt = time.Now()

	err := db.Model(&models.CategorySetting{}).
		Where("category = ?", category).
		Updates(map[string]interface{}{
			"is_closed":     setting.IsClosed,
			"closed_reason": setting.ClosedReason,
			"closed_from":   setting.ClosedFrom,
			"closed_to":     setting.ClosedTo,
			"updated_at":    setting.UpdatedAt,
		}).Error
	if err != nil {
		return models.CategorySetting{}, fmt.Errorf("update category %s: %w", category, err)
	}
	return setting, nil
}

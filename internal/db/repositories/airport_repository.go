package repositories

import (
	"context"

	gormModels "skyward/farecast/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airports table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByCode finds an airport by its code (case-insensitive)
func (r *AirportRepository) FindByCode(ctx context.Context, code string) (*gormModels.Airport, error) {
	var airport gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("UPPER(code) = UPPER(?)", code).
		First(&airport).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// FindAll returns every airport, ordered by code
func (r *AirportRepository) FindAll(ctx context.Context) ([]gormModels.Airport, error) {
	var airports []gormModels.Airport
	err := r.db.WithContext(ctx).Order("code").Find(&airports).Error
	return airports, err
}

// BatchInsert inserts multiple airports
func (r *AirportRepository) BatchInsert(ctx context.Context, airports []gormModels.Airport) error {
	return r.db.WithContext(ctx).
		CreateInBatches(airports, 100).Error
}

// DeleteAll deletes all airports (useful for re-importing)
func (r *AirportRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&gormModels.Airport{}).Error
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Airport{}).Count(&count).Error
	return count, err
}

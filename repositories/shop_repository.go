package repositories

import (
	"strings"

	"gorm.io/gorm"
	"motogarage-api/models"
)

// ShopPageSize is the fixed directory page size.
const ShopPageSize = 50

// countrySampleLimit bounds the fallback scan used when the distinct query
// cannot be issued.
const countrySampleLimit = 1000

type ShopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// applyFilters builds the filtered query: case-insensitive OR match of the
// search text across name/city/address, equality on country/city, and a
// minimum rating threshold.
func (r *ShopRepository) applyFilters(filters models.ShopFilters) *gorm.DB {
	query := r.db.Model(&models.Shop{})

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filters.Country != "" {
		query = query.Where("country = ?", filters.Country)
	}
	if filters.City != "" {
		query = query.Where("city = ?", filters.City)
	}
	if filters.MinRating > 0 {
		query = query.Where("rating >= ?", filters.MinRating)
	}

	return query
}

// List returns one page of shops matching the filters, sorted by country,
// then city, then name. Page numbering starts at 0.
func (r *ShopRepository) List(filters models.ShopFilters, page int) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.applyFilters(filters).
		Order("country").Order("city").Order("name").
		Offset(page * ShopPageSize).
		Limit(ShopPageSize).
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

// Count returns the exact number of shops in the directory.
func (r *ShopRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Shop{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DistinctCountries returns the sorted set of countries. If the distinct
// query fails it falls back to sampling up to 1000 rows and deduplicating.
func (r *ShopRepository) DistinctCountries() ([]string, error) {
	var countries []string
	err := r.db.Model(&models.Shop{}).
		Distinct("country").
		Order("country").
		Pluck("country", &countries).Error
	if err == nil {
		return countries, nil
	}

	// Fallback: sample rows and deduplicate client-side.
	var sampled []string
	err = r.db.Model(&models.Shop{}).
		Select("country").
		Order("country").
		Limit(countrySampleLimit).
		Pluck("country", &sampled).Error
	if err != nil {
		return nil, err
	}
	return dedupe(sampled), nil
}

// DistinctCities returns the sorted set of cities for one country.
func (r *ShopRepository) DistinctCities(country string) ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Shop{}).
		Where("country = ?", country).
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// Stats returns the directory summary counters.
func (r *ShopRepository) Stats() (*models.ShopStats, error) {
	total, err := r.Count()
	if err != nil {
		return nil, err
	}
	countries, err := r.DistinctCountries()
	if err != nil {
		return nil, err
	}
	return &models.ShopStats{
		TotalShops:     total,
		TotalCountries: len(countries),
	}, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

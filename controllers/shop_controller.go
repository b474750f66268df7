package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"motogarage-api/models"
	"motogarage-api/repositories"
	"motogarage-api/utils"
)

type ShopController struct {
	shopRepo *repositories.ShopRepository
}

func NewShopController(db *gorm.DB) *ShopController {
	return &ShopController{
		shopRepo: repositories.NewShopRepository(db),
	}
}

// GetShops handles GET /api/v1/shops
// Returns one directory page for the given filters.
func (sc *ShopController) GetShops(c *gin.Context) {
	filters := models.ShopFilters{
		Search:  c.Query("search"),
		Country: c.Query("country"),
		City:    c.Query("city"),
	}
	if rating := c.Query("min_rating"); rating != "" {
		parsed, err := strconv.ParseFloat(rating, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minimum rating"})
			return
		}
		filters.MinRating = parsed
	}

	page := 0
	if p := c.Query("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		page = parsed
	}

	shops, err := sc.shopRepo.List(filters, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shops"})
		return
	}

	utils.SendPage(c, shops, page, repositories.ShopPageSize, len(shops))
}

// GetStats handles GET /api/v1/shops/stats
func (sc *ShopController) GetStats(c *gin.Context) {
	stats, err := sc.shopRepo.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch directory statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCountries handles GET /api/v1/shops/countries
func (sc *ShopController) GetCountries(c *gin.Context) {
	countries, err := sc.shopRepo.DistinctCountries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// GetCities handles GET /api/v1/shops/cities?country=
func (sc *ShopController) GetCities(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusOK, gin.H{"cities": []string{}})
		return
	}

	cities, err := sc.shopRepo.DistinctCities(country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"motogarage-api/models"
	"motogarage-api/utils"
)

type MotorcycleController struct {
	db *gorm.DB
}

func NewMotorcycleController(db *gorm.DB) *MotorcycleController {
	return &MotorcycleController{db: db}
}

// MotorcycleRequest carries the garage form as entered: numeric fields stay
// strings until validation, optional fields become nil when blank.
type MotorcycleRequest struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Mileage      string `json:"mileage"`
	MileageUnit  string `json:"mileage_unit"`
	EngineSize   string `json:"engine_size"`
	Color        string `json:"color"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	PurchaseDate string `json:"purchase_date"`
	CurrentOwner bool   `json:"current_owner"`
	Condition    string `json:"condition"`
	Notes        string `json:"notes"`
}

func (req *MotorcycleRequest) fieldValues() utils.FieldValues {
	return utils.FieldValues{
		"brand":       req.Brand,
		"model":       req.Model,
		"year":        req.Year,
		"mileage":     req.Mileage,
		"engine_size": req.EngineSize,
	}
}

// apply writes the validated form onto a motorcycle record.
func (req *MotorcycleRequest) apply(m *models.Motorcycle) {
	year, _ := strconv.Atoi(req.Year)

	unit := req.MileageUnit
	if unit != models.MileageUnitMiles {
		unit = models.MileageUnitKm
	}

	m.Brand = strings.TrimSpace(req.Brand)
	m.Model = strings.TrimSpace(req.Model)
	m.Year = year
	m.Mileage = optionalInt(req.Mileage)
	m.MileageUnit = unit
	m.EngineSize = optionalInt(req.EngineSize)
	m.Color = optionalString(req.Color)
	m.LicensePlate = optionalString(req.LicensePlate)
	m.VIN = optionalString(req.VIN)
	m.PurchaseDate = optionalString(req.PurchaseDate)
	m.CurrentOwner = req.CurrentOwner
	m.Notes = optionalString(req.Notes)

	if models.IsValidCondition(req.Condition) {
		condition := req.Condition
		m.Condition = &condition
	} else {
		m.Condition = nil
	}
}

func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	userID := c.GetString("user_id")

	var motorcycles []models.Motorcycle
	if err := mc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&motorcycles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch motorcycles"})
		return
	}

	c.JSON(http.StatusOK, motorcycles)
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	userID := c.GetString("user_id")

	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := utils.Validate(utils.MotorcycleRules(), req.fieldValues())
	if len(fields) > 0 {
		utils.SendFieldErrors(c, fields)
		return
	}

	motorcycle := models.Motorcycle{
		ID:     uuid.New().String(),
		UserID: userID,
	}
	req.apply(&motorcycle)

	if err := mc.db.Create(&motorcycle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create motorcycle"})
		return
	}

	c.JSON(http.StatusCreated, motorcycle)
}

func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var motorcycle models.Motorcycle
	if err := mc.db.First(&motorcycle, "id = ? AND user_id = ?", motorcycleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
		return
	}

	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := utils.Validate(utils.MotorcycleRules(), req.fieldValues())
	if len(fields) > 0 {
		utils.SendFieldErrors(c, fields)
		return
	}

	req.apply(&motorcycle)

	if err := mc.db.Save(&motorcycle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update motorcycle"})
		return
	}

	c.JSON(http.StatusOK, motorcycle)
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var motorcycle models.Motorcycle
	if err := mc.db.First(&motorcycle, "id = ? AND user_id = ?", motorcycleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
		return
	}

	if err := mc.db.Delete(&motorcycle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete motorcycle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Motorcycle deleted successfully"})
}

package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"motogarage-api/models"
	"motogarage-api/services"
	"motogarage-api/utils"
)

type BookingController struct {
	db           *gorm.DB
	emailService *services.EmailService
}

func NewBookingController(db *gorm.DB, emailService *services.EmailService) *BookingController {
	return &BookingController{db: db, emailService: emailService}
}

// BookingRequestForm carries the booking form as entered.
type BookingRequestForm struct {
	MotorcycleID    string `json:"motorcycle_id"`
	ServiceType     string `json:"service_type"`
	Description     string `json:"description"`
	PreferredDate   string `json:"preferred_date"`
	PreferredTime   string `json:"preferred_time"`
	ContactPhone    string `json:"contact_phone"`
	ContactMethod   string `json:"contact_method"`
	Urgency         string `json:"urgency"`
	EstimatedBudget string `json:"estimated_budget"`
	Currency        string `json:"currency"`
}

func (req *BookingRequestForm) fieldValues() utils.FieldValues {
	return utils.FieldValues{
		"motorcycle_id":    req.MotorcycleID,
		"service_type":     req.ServiceType,
		"description":      req.Description,
		"preferred_date":   req.PreferredDate,
		"preferred_time":   req.PreferredTime,
		"contact_phone":    req.ContactPhone,
		"contact_method":   req.ContactMethod,
		"estimated_budget": req.EstimatedBudget,
	}
}

// GetBookings returns the rider's booking requests joined with motorcycle
// details, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID := c.GetString("user_id")

	var bookings []models.BookingRequest
	err := bc.db.Preload("Motorcycle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking requests"})
		return
	}

	details := make([]models.BookingWithDetails, 0, len(bookings))
	for _, b := range bookings {
		d := models.BookingWithDetails{BookingRequest: b}
		d.Brand = b.Motorcycle.Brand
		d.Model = b.Motorcycle.Model
		d.Year = b.Motorcycle.Year
		if b.Motorcycle.LicensePlate != nil {
			d.LicensePlate = *b.Motorcycle.LicensePlate
		}
		details = append(details, d)
	}

	c.JSON(http.StatusOK, details)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	var req BookingRequestForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := utils.Validate(utils.BookingRules(), req.fieldValues())
	if len(fields) > 0 {
		utils.SendFieldErrors(c, fields)
		return
	}

	if !models.IsValidServiceType(req.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service type"})
		return
	}
	if req.ContactMethod != "" && !models.IsValidContactMethod(req.ContactMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown contact method"})
		return
	}
	if req.Urgency != "" && !models.IsValidUrgency(req.Urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown urgency level"})
		return
	}

	// The motorcycle must belong to the requesting rider.
	var motorcycle models.Motorcycle
	if err := bc.db.First(&motorcycle, "id = ? AND user_id = ?", req.MotorcycleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
		return
	}

	booking := models.BookingRequest{
		ID:            uuid.New().String(),
		UserID:        userID,
		MotorcycleID:  req.MotorcycleID,
		ServiceType:   req.ServiceType,
		Description:   strings.TrimSpace(req.Description),
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		ContactMethod: defaultString(req.ContactMethod, models.ContactMethodEmail),
		Urgency:       defaultString(req.Urgency, "normal"),
		Currency:      defaultString(req.Currency, "EUR"),
		Status:        models.BookingStatusPending,
		ContactPhone:  optionalString(req.ContactPhone),
	}

	if req.EstimatedBudget != "" {
		budget, _ := strconv.ParseFloat(req.EstimatedBudget, 64)
		booking.EstimatedBudget = &budget
	}

	if err := bc.db.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit booking request"})
		return
	}

	// Confirmation email is best-effort
	go func() {
		var user models.User
		if err := bc.db.First(&user, "id = ?", userID).Error; err != nil {
			return
		}
		if err := bc.emailService.SendBookingReceivedEmail(user.Email, user.FullName, &booking); err != nil {
			log.Printf("Failed to send booking email: %v", err)
		}
	}()

	c.JSON(http.StatusCreated, booking)
}

// CancelBooking sets a pending booking to cancelled. Later statuses belong to
// shop staff and cannot be cancelled here.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID := c.GetString("user_id")
	bookingID := c.Param("id")

	var booking models.BookingRequest
	if err := bc.db.First(&booking, "id = ? AND user_id = ?", bookingID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found or access denied"})
		return
	}

	if booking.Status != models.BookingStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending booking requests can be cancelled"})
		return
	}

	if err := bc.db.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking request cancelled successfully"})
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	userID := c.GetString("user_id")
	bookingID := c.Param("id")

	var booking models.BookingRequest
	if err := bc.db.First(&booking, "id = ? AND user_id = ?", bookingID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found or access denied"})
		return
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusCancelled {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending or cancelled booking requests can be deleted"})
		return
	}

	if err := bc.db.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking request deleted successfully"})
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

package services

import (
	"fmt"
	"gopkg.in/gomail.v2"
	"motogarage-api/config"
	"motogarage-api/models"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendWelcomeEmail greets a newly registered rider.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to MotoGarage EU")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Add your motorcycles to your garage, browse repair shops across Europe and book your next service.</p>
		<p>Ride safe,<br>The MotoGarage EU Team</p>
	`, name)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

// SendBookingReceivedEmail confirms that a booking request was recorded.
func (es *EmailService) SendBookingReceivedEmail(email, name string, booking *models.BookingRequest) error {
	serviceLabel := models.ServiceTypeLabels[booking.ServiceType]
	if serviceLabel == "" {
		serviceLabel = booking.ServiceType
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Booking request received")

	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>We received your booking request for <strong>%s</strong> on %s at %s.</p>
		<p>The request is pending review. We will contact you soon.</p>
		<p>Ride safe,<br>The MotoGarage EU Team</p>
	`, name, serviceLabel, booking.PreferredDate, booking.PreferredTime)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}

	return nil
}

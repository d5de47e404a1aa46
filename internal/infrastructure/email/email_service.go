package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/devillabs/cms-api/internal/core/domain/contact"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey   string
	FromEmail        string
	FromName         string
	ContactRecipient string
	CompanyName      string
}

// Sender is the subset of the SendGrid client used here.
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailService delivers contact form notifications through SendGrid.
type EmailService struct {
	config *EmailConfig
	logger *logrus.Logger
	client Sender
}

func NewEmailService(config *EmailConfig, logger *logrus.Logger) *EmailService {
	return NewEmailServiceWithSender(config, sendgrid.NewSendClient(config.SendGridAPIKey), logger)
}

func NewEmailServiceWithSender(config *EmailConfig, sender Sender, logger *logrus.Logger) *EmailService {
	return &EmailService{config: config, logger: logger, client: sender}
}

// ContactSubject is the subject line of the notification sent for req.
func ContactSubject(company string, req contact.Request) string {
	return fmt.Sprintf("%s Contact – %s | %s | %s Priority", company, req.Name, req.ProjectType, req.Priority)
}

// ContactBody renders the plain-text notification body.
func ContactBody(company string, req contact.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission for %s\n\n", company)
	fmt.Fprintf(&b, "CONTACT\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nCompany: %s\nPhone: %s\n\n", req.Name, req.Email, req.Company, req.Phone)
	fmt.Fprintf(&b, "PROJECT\n")
	fmt.Fprintf(&b, "Service: %s\nProject type: %s\nBudget: %s\nTimeline: %s\nPriority: %s\n\n",
		req.Service, req.ProjectType, req.Budget, req.Timeline, req.Priority)
	fmt.Fprintf(&b, "TECHNICAL REQUIREMENTS\n%s\n\n", req.TechnicalRequirements)
	fmt.Fprintf(&b, "MESSAGE\n%s\n", req.Message)
	return b.String()
}

func (e *EmailService) SendContactNotification(ctx context.Context, req contact.Request) error {
	if e.config.SendGridAPIKey == "" {
		return fmt.Errorf("email provider not configured")
	}
	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	to := mail.NewEmail("", e.config.ContactRecipient)
	subject := ContactSubject(e.config.CompanyName, req)

	message := mail.NewSingleEmail(from, subject, to, ContactBody(e.config.CompanyName, req), "")
	message.SetReplyTo(mail.NewEmail(req.Name, req.Email))

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"to":      e.config.ContactRecipient,
			"subject": subject,
			"error":   err,
		}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 300 {
		e.logger.WithFields(logrus.Fields{
			"to":          e.config.ContactRecipient,
			"status_code": response.StatusCode,
		}).Error("Email provider rejected message")
		return fmt.Errorf("email provider returned status %d", response.StatusCode)
	}

	e.logger.WithFields(logrus.Fields{
		"to":          e.config.ContactRecipient,
		"subject":     subject,
		"status_code": response.StatusCode,
	}).Info("Email sent successfully")
	return nil
}

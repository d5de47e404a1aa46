package services

import (
	"context"
	"fmt"

	"github.com/devillabs/cms-api/internal/core/domain/contact"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// ContactService sanitises contact form submissions and forwards them by email.
type ContactService struct {
	email     ports.EmailService
	sanitizer ports.Sanitizer
	logger    *logrus.Logger
}

func NewContactService(email ports.EmailService, sanitizer ports.Sanitizer, logger *logrus.Logger) *ContactService {
	return &ContactService{email: email, sanitizer: sanitizer, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, req *contact.Request) error {
	clean := contact.Request{
		Name:                  s.sanitizer.Sanitize(req.Name),
		Email:                 req.Email,
		Company:               s.sanitizer.Sanitize(req.Company),
		Phone:                 s.sanitizer.Sanitize(req.Phone),
		Service:               s.sanitizer.Sanitize(req.Service),
		ProjectType:           s.sanitizer.Sanitize(req.ProjectType),
		Budget:                s.sanitizer.Sanitize(req.Budget),
		Timeline:              s.sanitizer.Sanitize(req.Timeline),
		Priority:              s.sanitizer.Sanitize(req.Priority),
		TechnicalRequirements: s.sanitizer.Sanitize(req.TechnicalRequirements),
		Message:               s.sanitizer.Sanitize(req.Message),
	}.WithDefaults()

	if err := s.email.SendContactNotification(ctx, clean); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"from": clean.Email}).WithError(err).Error("failed to send contact email")
		}
		return fmt.Errorf("send contact email: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"from": clean.Email, "project_type": clean.ProjectType}).Info("contact form forwarded")
	}
	return nil
}

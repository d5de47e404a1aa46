package ports

import (
	"context"

	"github.com/devillabs/cms-api/internal/core/domain/contact"
)

// EmailService defines the interface for outbound email
type EmailService interface {
	SendContactNotification(ctx context.Context, req contact.Request) error
}

// ContactService handles public contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req *contact.Request) error
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/domain/contact"
	"github.com/devillabs/cms-api/internal/utils"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/stretchr/testify/require"
)

func TestContactService_SanitisesAndDefaults(t *testing.T) {
	var sent contact.Request
	email := &mocks.EmailServiceMock{SendContactNotificationFn: func(ctx context.Context, req contact.Request) error {
		sent = req
		return nil
	}}
	svc := services.NewContactService(email, utils.NewSanitizer(), nil)

	err := svc.Submit(context.Background(), &contact.Request{
		Name:    "Ada <b>Lovelace</b>",
		Email:   "ada@example.com",
		Message: "Hello <script>alert(1)</script>there",
		Budget:  "5k",
	})
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", sent.Name)
	require.Equal(t, "Hello there", sent.Message)
	require.Equal(t, "5k", sent.Budget)
	require.Equal(t, "Not provided", sent.Company)
	require.Equal(t, "Not provided", sent.Phone)
	require.Equal(t, "Not specified", sent.Service)
	require.Equal(t, "Not specified", sent.Priority)
	require.Equal(t, "None specified", sent.TechnicalRequirements)
}

func TestContactService_SendFailure(t *testing.T) {
	email := &mocks.EmailServiceMock{SendContactNotificationFn: func(context.Context, contact.Request) error {
		return errors.New("sendgrid 401")
	}}
	svc := services.NewContactService(email, &mocks.SanitizerMock{}, nil)
	require.Error(t, svc.Submit(context.Background(), &contact.Request{Name: "a", Email: "a@b.c", Message: "m"}))
}

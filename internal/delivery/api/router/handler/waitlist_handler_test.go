package handler

import (
	"net/http"
	"testing"

	mockUsecase "heyfarmer/internal/mocks/usecase"
	"heyfarmer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWaitlistHandler_Join(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		want    int
	}{
		{name: "new email", created: true, want: http.StatusCreated},
		{name: "already listed", created: false, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			waitlist := mockUsecase.NewMockWaitlistUsecase(t)
			srv.e.POST("/waitlist", NewWaitlistHandler(WaitlistHandlerParams{WaitlistUC: waitlist}).Join)

			waitlist.EXPECT().Join(mock.Anything, &usecase.JoinWaitlistInput{
				Email:  "grower@example.com",
				Name:   "Jo",
				Role:   "market_gardener",
				County: "spokane",
			}).Return(tt.created, nil)

			rec := srv.do(http.MethodPost, "/waitlist",
				`{"email":"grower@example.com","name":"Jo","role":"market_gardener","county":"spokane-county"}`, false)

			require.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Equal(t, tt.created, decodeData[JoinWaitlistView](t, rec).Created)
		})
	}
}

func TestWaitlistHandler_JoinValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"name":"Jo"}`},
		{name: "malformed email", body: `{"email":"not-an-email"}`},
		{name: "unknown role", body: `{"email":"a@example.com","role":"rancher"}`},
		{name: "unknown county", body: `{"email":"a@example.com","county":"atlantis"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			waitlist := mockUsecase.NewMockWaitlistUsecase(t)
			srv.e.POST("/waitlist", NewWaitlistHandler(WaitlistHandlerParams{WaitlistUC: waitlist}).Join)

			rec := srv.do(http.MethodPost, "/waitlist", tt.body, false)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

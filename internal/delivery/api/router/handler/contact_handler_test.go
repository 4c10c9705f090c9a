package handler

import (
	"net/http"
	"testing"

	mockUsecase "heyfarmer/internal/mocks/usecase"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactTestServer(t *testing.T) (*testServer, *mockUsecase.MockContactUsecase) {
	srv := newTestServer(t)
	contact := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{ContactUC: contact})
	srv.e.POST("/contact", h.Contact, srv.auth.OptionalAuthenticate)

	return srv, contact
}

func TestContactHandler_GuestGetsLoginRedirect(t *testing.T) {
	srv, contact := newContactTestServer(t)
	listingID := uuid.New()

	contact.EXPECT().
		Contact(mock.Anything, &usecase.ContactInput{ListingID: &listingID}).
		Return(&usecase.ContactResult{RequiresLogin: true, RedirectTo: "/login?redirect=/listing/" + listingID.String()}, nil)

	rec := srv.do(http.MethodPost, "/contact", `{"listing_id":"`+listingID.String()+`"}`, false)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decodeData[usecase.ContactResult](t, rec)
	assert.True(t, result.RequiresLogin)
	assert.Equal(t, "/login?redirect=/listing/"+listingID.String(), result.RedirectTo)
}

func TestContactHandler_SignedInViewer(t *testing.T) {
	srv, contact := newContactTestServer(t)
	farmer, conversationID := uuid.New(), uuid.New()

	contact.EXPECT().
		Contact(mock.Anything, &usecase.ContactInput{ViewerID: &srv.viewer, CounterpartyID: farmer}).
		Return(&usecase.ContactResult{RedirectTo: "/messages?conversation=" + conversationID.String(), ConversationID: &conversationID}, nil)

	rec := srv.do(http.MethodPost, "/contact", `{"counterparty_id":"`+farmer.String()+`"}`, true)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decodeData[usecase.ContactResult](t, rec)
	require.NotNil(t, result.ConversationID)
	assert.Equal(t, conversationID, *result.ConversationID)
}

func TestContactHandler_RequiresTarget(t *testing.T) {
	srv, _ := newContactTestServer(t)

	rec := srv.do(http.MethodPost, "/contact", `{}`, true)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "heyfarmer/internal/delivery/context"
	"heyfarmer/internal/domain/constants"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/domain/repository"
	"heyfarmer/internal/domain/service"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	listingOpeningTemplate = "Hi! I'm interested in your listing \"%s\" on HeyFarmer."
	profileOpeningMessage  = "Hi! I found your profile on HeyFarmer and would like to connect."
)

type contactService struct {
	txManager repository.TransactionManager
	listings  usecase.ListingUsecase
	messaging usecase.MessagingUsecase
	metrics   service.MarketplaceMetrics
	logger    *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Listings  usecase.ListingUsecase
	Messaging usecase.MessagingUsecase
	Metrics   service.MarketplaceMetrics
	Logger    *slog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager: params.TxManager,
		listings:  params.Listings,
		messaging: params.Messaging,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Contact resolves or creates the conversation between the viewer and the
// counterparty and sends the opening message. Guests are sent to login
// with a return path. Once the counterparty is known, failures are logged
// and the viewer is still sent to the inbox.
func (srv *contactService) Contact(ctx context.Context, input *usecase.ContactInput) (*usecase.ContactResult, error) {
	if input.ViewerID == nil {
		srv.metrics.ContactAttempt(service.ContactOutcomeLoginRequired)

		return &usecase.ContactResult{
			RequiresLogin: true,
			RedirectTo:    loginRedirect(input),
		}, nil
	}
	viewerID := *input.ViewerID

	counterpartyID := input.CounterpartyID
	opening := profileOpeningMessage
	if input.ListingID != nil {
		post, err := srv.listings.Get(ctx, input.ViewerID, *input.ListingID)
		if err != nil {
			return nil, err
		}
		counterpartyID = post.UserID
		opening = fmt.Sprintf(listingOpeningTemplate, post.Title)
	}

	if counterpartyID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("counterparty is required")
	}
	if counterpartyID == viewerID {
		return nil, domainerrors.ErrSelfContact
	}

	var conversationID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var getErr error
		conversationID, getErr = repoFactory.ConversationRepo().GetOrCreateConversation(ctx, viewerID, counterpartyID)

		return getErr
	})
	if err != nil {
		logBestEffort(ctx, srv.log(ctx), "Failed to resolve conversation", err,
			slog.String("viewer_id", viewerID.String()),
			slog.String("counterparty_id", counterpartyID.String()),
		)
		srv.metrics.ContactAttempt(service.ContactOutcomeDegraded)

		return &usecase.ContactResult{RedirectTo: constants.PathMessages}, nil
	}

	result := &usecase.ContactResult{
		RedirectTo:     constants.PathMessages + "?conversation=" + conversationID.String(),
		ConversationID: &conversationID,
	}

	if _, err := srv.messaging.SendMessage(ctx, viewerID, conversationID, opening); err != nil {
		logBestEffort(ctx, srv.log(ctx), "Failed to send opening message", err,
			slog.String("conversation_id", conversationID.String()),
		)
		srv.metrics.ContactAttempt(service.ContactOutcomeDegraded)

		return result, nil
	}

	srv.metrics.ContactAttempt(service.ContactOutcomeCreated)

	return result, nil
}

// loginRedirect returns the login path with the page the guest came from.
func loginRedirect(input *usecase.ContactInput) string {
	returnTo := constants.PathProfile + input.CounterpartyID.String()
	if input.ListingID != nil {
		returnTo = constants.PathListing + input.ListingID.String()
	}

	return constants.PathLogin + "?redirect=" + returnTo
}

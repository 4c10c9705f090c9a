package handler

import (
	"net/http"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/domain/marketplace"
	"heyfarmer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
}

// ListingHandler serves the marketplace feed, listing CRUD and saved listings.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{listingUC: params.ListingUC}
}

// BrowseRequest is the query string of the feed.
type BrowseRequest struct {
	Query    string `query:"q"`
	Type     string `query:"type" validate:"omitempty,oneof=produce equipment resource discussion"`
	County   string `query:"county" validate:"county"`
	Price    string `query:"price"`
	Delivery string `query:"delivery"`
}

func (r *BrowseRequest) toFilters() (marketplace.FilterSet, error) {
	bucket, err := marketplace.ParsePriceBucket(r.Price)
	if err != nil {
		return marketplace.FilterSet{}, err
	}
	delivery, err := marketplace.ParseDeliveryMethod(r.Delivery)
	if err != nil {
		return marketplace.FilterSet{}, err
	}

	return marketplace.FilterSet{
		PostType:    entity.PostType(r.Type),
		County:      normalizeCounty(r.County),
		PriceBucket: bucket,
		Delivery:    delivery,
	}, nil
}

// ListingRequest is the body of create and update.
type ListingRequest struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=5000"`
	Type        string              `json:"type" validate:"required,oneof=produce equipment resource discussion"`
	Category    string              `json:"category" validate:"max=80"`
	Tags        []string            `json:"tags" validate:"max=20,dive,max=40"`
	Visibility  string              `json:"visibility" validate:"omitempty,oneof=public farmers_only"`
	Status      string              `json:"status" validate:"omitempty,oneof=active sold expired draft"`
	County      string              `json:"county" validate:"county"`
	City        string              `json:"city" validate:"max=120"`
	Price       *float64            `json:"price" validate:"omitempty,gte=0"`
	Unit        string              `json:"unit" validate:"max=40"`
	Quantity    *float64            `json:"quantity" validate:"omitempty,gte=0"`
	SubProducts []entity.SubProduct `json:"sub_products" validate:"max=50"`

	PickupAvailable   bool     `json:"pickup_available"`
	DeliveryAvailable bool     `json:"delivery_available"`
	Images            []string `json:"images" validate:"max=10,dive,url"`
}

func (r *ListingRequest) toInput() *usecase.ListingInput {
	return &usecase.ListingInput{
		Title:             r.Title,
		Description:       r.Description,
		Type:              entity.PostType(r.Type),
		Category:          r.Category,
		Tags:              r.Tags,
		Visibility:        entity.Visibility(r.Visibility),
		Status:            entity.PostStatus(r.Status),
		County:            normalizeCounty(r.County),
		City:              r.City,
		Price:             r.Price,
		Unit:              r.Unit,
		Quantity:          r.Quantity,
		SubProducts:       r.SubProducts,
		PickupAvailable:   r.PickupAvailable,
		DeliveryAvailable: r.DeliveryAvailable,
		Images:            r.Images,
	}
}

// UpdateStatusRequest moves a listing through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active sold expired draft"`
}

// Browse returns the feed visible to the viewer, filtered and searched.
func (h *ListingHandler) Browse(c echo.Context) error {
	var req BrowseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	filters, err := req.toFilters()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	posts, err := h.listingUC.Browse(c.Request().Context(), middleware.GetViewer(c), &usecase.BrowseInput{
		Query:   req.Query,
		Filters: filters,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, newListingViews(posts))
}

// Get returns one listing when the viewer may see it.
func (h *ListingHandler) Get(c echo.Context) error {
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.listingUC.Get(c.Request().Context(), middleware.GetViewer(c), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingView(post))
}

// ListMine returns the caller's listings in every status.
func (h *ListingHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	posts, err := h.listingUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, newListingViews(posts))
}

// Create publishes a listing owned by the caller.
func (h *ListingHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.listingUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newListingView(post))
}

// Update replaces the writable fields of the caller's listing.
func (h *ListingHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.listingUC.Update(c.Request().Context(), userID, postID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newListingView(post))
}

// UpdateStatus changes the lifecycle status of the caller's listing.
func (h *ListingHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.UpdateStatus(c.Request().Context(), userID, postID, entity.PostStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Listing status updated"})
}

// Delete removes the caller's listing.
func (h *ListingHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.Delete(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR renders the listing's share link as a PNG.
func (h *ListingHandler) ShareQR(c echo.Context) error {
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.listingUC.ShareQR(c.Request().Context(), middleware.GetViewer(c), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Save bookmarks a visible listing for the caller.
func (h *ListingHandler) Save(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.Save(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Listing saved"})
}

// Unsave removes a bookmark.
func (h *ListingHandler) Unsave(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	postID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.listingUC.Unsave(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSaved returns the caller's bookmarks that are still visible to them.
func (h *ListingHandler) ListSaved(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	posts, err := h.listingUC.ListSaved(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, newListingViews(posts))
}

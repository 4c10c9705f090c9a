package handler

import (
	"net/http"

	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/response"
	domainerrors "heyfarmer/internal/domain/errors"
	"heyfarmer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageCacheControl = "public, max-age=86400, immutable"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
}

// MediaHandler accepts image uploads and serves stored images.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{mediaUC: params.MediaUC}
}

// UploadImage stores the multipart "file" field. The "kind" form field is
// "listing" (default) or "avatar".
func (h *MediaHandler) UploadImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("uploaded file could not be read"))
	}
	defer file.Close()

	kind := usecase.MediaKind(c.FormValue("kind"))
	if kind == "" {
		kind = usecase.MediaKindListing
	}

	stored, err := h.mediaUC.UploadImage(c.Request().Context(), userID, &usecase.UploadImageInput{
		Kind:     kind,
		Filename: fileHeader.Filename,
		Body:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, stored)
}

// ServeImage streams a stored image by key.
func (h *MediaHandler) ServeImage(c echo.Context) error {
	body, contentType, err := h.mediaUC.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", imageCacheControl)
	c.Response().Header().Set(echo.HeaderXContentTypeOptions, "nosniff")

	return c.Stream(http.StatusOK, contentType, body)
}

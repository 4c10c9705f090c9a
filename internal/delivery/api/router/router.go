// Package router wires the API handlers onto echo routes.
package router

import (
	"heyfarmer/internal/delivery/api/middleware"
	"heyfarmer/internal/delivery/api/router/handler"
	"heyfarmer/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the root of every versioned endpoint.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	ListingHandler      *handler.ListingHandler
	ConversationHandler *handler.ConversationHandler
	ContactHandler      *handler.ContactHandler
	CountyHandler       *handler.CountyHandler
	WaitlistHandler     *handler.WaitlistHandler
	MediaHandler        *handler.MediaHandler
	DeviceHandler       *handler.DeviceHandler
	RealtimeHandler     *handler.RealtimeHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Recorder
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
// uploadLimit guards the media upload route, which is exempt from the global body limit.
func (r *router) RegisterRoutes(e *echo.Echo, uploadLimit echo.MiddlewareFunc) {
	e.GET("/health", r.HealthHandler.Live)
	e.GET("/health/ready", r.HealthHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(r.Metrics.Handler()))

	authenticate := r.AuthMiddleware.Authenticate
	optional := r.AuthMiddleware.OptionalAuthenticate

	api := e.Group(APIPrefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.AuthHandler.SignUp)
		authGroup.POST("/signin", r.AuthHandler.SignIn)
		authGroup.POST("/google", r.AuthHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.POST("/signout", r.AuthHandler.SignOut)
		authGroup.POST("/recovery", r.AuthHandler.RequestRecovery)
		authGroup.POST("/recovery/exchange", r.AuthHandler.ExchangeRecovery)
		authGroup.GET("/session", r.AuthHandler.Session, authenticate)
		authGroup.PUT("/password", r.AuthHandler.UpdatePassword, authenticate)
	}

	profilesGroup := api.Group("/profiles")
	{
		profilesGroup.GET("/me", r.ProfileHandler.GetMyProfile, authenticate)
		profilesGroup.PATCH("/me", r.ProfileHandler.UpdateMyProfile, authenticate)
		profilesGroup.GET("/farmers", r.ProfileHandler.SearchFarmers)
		profilesGroup.GET("/:id", r.ProfileHandler.GetProfile, optional)
	}

	listingsGroup := api.Group("/listings")
	{
		listingsGroup.GET("", r.ListingHandler.Browse, optional)
		listingsGroup.GET("/mine", r.ListingHandler.ListMine, authenticate)
		listingsGroup.GET("/:id", r.ListingHandler.Get, optional)
		listingsGroup.GET("/:id/qr", r.ListingHandler.ShareQR, optional)
		listingsGroup.POST("", r.ListingHandler.Create, authenticate)
		listingsGroup.PUT("/:id", r.ListingHandler.Update, authenticate)
		listingsGroup.PATCH("/:id/status", r.ListingHandler.UpdateStatus, authenticate)
		listingsGroup.DELETE("/:id", r.ListingHandler.Delete, authenticate)
		listingsGroup.POST("/:id/save", r.ListingHandler.Save, authenticate)
		listingsGroup.DELETE("/:id/save", r.ListingHandler.Unsave, authenticate)
	}
	api.GET("/saved", r.ListingHandler.ListSaved, authenticate)

	conversationsGroup := api.Group("/conversations", authenticate)
	{
		conversationsGroup.GET("", r.ConversationHandler.List)
		conversationsGroup.GET("/:id/messages", r.ConversationHandler.Messages)
		conversationsGroup.POST("/:id/messages", r.ConversationHandler.Send)
		conversationsGroup.POST("/:id/read", r.ConversationHandler.MarkRead)
		conversationsGroup.GET("/:id/typing", r.ConversationHandler.Typing)
		conversationsGroup.POST("/:id/typing", r.ConversationHandler.StartTyping)
	}
	api.POST("/contact", r.ContactHandler.Contact, optional)

	countiesGroup := api.Group("/counties")
	{
		countiesGroup.GET("", r.CountyHandler.List)
		countiesGroup.GET("/nearest", r.CountyHandler.Nearest)
		countiesGroup.GET("/:slug", r.CountyHandler.Get)
	}

	api.POST("/waitlist", r.WaitlistHandler.Join)

	api.POST("/media/images", r.MediaHandler.UploadImage, uploadLimit, authenticate)
	api.GET("/media/*", r.MediaHandler.ServeImage)

	devicesGroup := api.Group("/devices", authenticate)
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.ListDevices)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	api.GET("/realtime/conversations/:id", r.RealtimeHandler.Subscribe, r.AuthMiddleware.AuthenticateUpgrade)
}

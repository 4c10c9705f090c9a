package handler

import (
	"time"

	"heyfarmer/internal/domain/county"
	"heyfarmer/internal/domain/entity"
	"heyfarmer/internal/usecase"

	"github.com/google/uuid"
)

// ListingView is the JSON form of a listing.
type ListingView struct {
	ID                uuid.UUID             `json:"id"`
	OwnerID           uuid.UUID             `json:"owner_id"`
	Title             string                `json:"title"`
	Description       string                `json:"description,omitempty"`
	Type              entity.PostType       `json:"type"`
	Category          string                `json:"category,omitempty"`
	Tags              []string              `json:"tags"`
	Visibility        entity.Visibility     `json:"visibility"`
	Status            entity.PostStatus     `json:"status"`
	County            string                `json:"county,omitempty"`
	CountyName        string                `json:"county_name,omitempty"`
	City              string                `json:"city,omitempty"`
	Price             *float64              `json:"price,omitempty"`
	Unit              string                `json:"unit,omitempty"`
	Quantity          *float64              `json:"quantity,omitempty"`
	SubProducts       []entity.SubProduct   `json:"sub_products,omitempty"`
	PickupAvailable   bool                  `json:"pickup_available"`
	DeliveryAvailable bool                  `json:"delivery_available"`
	Images            []string              `json:"images"`
	Seller            *entity.PublicProfile `json:"seller,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func newListingView(post *entity.Post) *ListingView {
	view := &ListingView{
		ID:                post.ID,
		OwnerID:           post.UserID,
		Title:             post.Title,
		Description:       post.Description,
		Type:              post.Type,
		Category:          post.Category,
		Tags:              nonNil(post.Tags),
		Visibility:        post.Visibility,
		Status:            post.Status,
		County:            post.County,
		CountyName:        county.DisplayName(county.ID(post.County)),
		City:              post.City,
		Price:             post.Price,
		Unit:              post.Unit,
		Quantity:          post.Quantity,
		SubProducts:       post.SubProducts,
		PickupAvailable:   post.PickupAvailable,
		DeliveryAvailable: post.DeliveryAvailable,
		Images:            nonNil(post.Images),
		CreatedAt:         post.CreatedAt,
		UpdatedAt:         post.UpdatedAt,
	}
	if post.Seller != nil {
		view.Seller = post.Seller.Public()
	}

	return view
}

func newListingViews(posts []*entity.Post) []*ListingView {
	views := make([]*ListingView, 0, len(posts))
	for _, post := range posts {
		views = append(views, newListingView(post))
	}

	return views
}

// ProfileView is the owner's own profile, including private fields.
type ProfileView struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	FarmName            string      `json:"farm_name,omitempty"`
	AvatarURL           string      `json:"avatar_url,omitempty"`
	Bio                 string      `json:"bio,omitempty"`
	Role                entity.Role `json:"role"`
	County              string      `json:"county,omitempty"`
	City                string      `json:"city,omitempty"`
	ExactAddress        string      `json:"exact_address,omitempty"`
	Phone               string      `json:"phone,omitempty"`
	Email               string      `json:"email,omitempty"`
	GrowTags            []string    `json:"grow_tags"`
	ShowPhone           bool        `json:"show_phone"`
	ShowEmail           bool        `json:"show_email"`
	ShowPlatformMessage bool        `json:"show_platform_message"`
	ShowInMarketplace   bool        `json:"show_in_marketplace"`
	AllowReviews        bool        `json:"allow_reviews"`
	IncludeInSearch     bool        `json:"include_in_search"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func newProfileView(p *entity.Profile) *ProfileView {
	return &ProfileView{
		ID:                  p.ID,
		Name:                p.Name,
		FarmName:            p.FarmName,
		AvatarURL:           p.AvatarURL,
		Bio:                 p.Bio,
		Role:                p.Role,
		County:              p.County,
		City:                p.City,
		ExactAddress:        p.ExactAddress,
		Phone:               p.Phone,
		Email:               p.Email,
		GrowTags:            nonNil(p.GrowTags),
		ShowPhone:           p.ShowPhone,
		ShowEmail:           p.ShowEmail,
		ShowPlatformMessage: p.ShowPlatformMessage,
		ShowInMarketplace:   p.ShowInMarketplace,
		AllowReviews:        p.AllowReviews,
		IncludeInSearch:     p.IncludeInSearch,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// UserView is the account part of a session.
type UserView struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuthView is returned by every sign-in flavor.
type AuthView struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	User         *UserView `json:"user"`
}

func newAuthView(out *usecase.AuthOutput) *AuthView {
	view := &AuthView{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
	}
	if out.User != nil {
		view.User = &UserView{
			ID:        out.User.ID,
			Email:     out.User.Email,
			Role:      out.Role,
			CreatedAt: out.User.CreatedAt,
		}
	}

	return view
}

// ConversationView is one inbox row.
type ConversationView struct {
	ID            uuid.UUID             `json:"id"`
	Counterpart   *entity.PublicProfile `json:"counterpart,omitempty"`
	LastMessage   string                `json:"last_message,omitempty"`
	LastMessageAt *time.Time            `json:"last_message_at,omitempty"`
	UnreadCount   int                   `json:"unread_count"`
}

func newConversationViews(summaries []*entity.ConversationSummary) []*ConversationView {
	views := make([]*ConversationView, 0, len(summaries))
	for _, s := range summaries {
		if s == nil || s.Conversation == nil {
			continue
		}
		views = append(views, &ConversationView{
			ID:            s.Conversation.ID,
			Counterpart:   s.Counterpart.Public(),
			LastMessage:   s.Conversation.LastMessage,
			LastMessageAt: s.Conversation.LastMessageAt,
			UnreadCount:   s.UnreadCount,
		})
	}

	return views
}

// CountyView is a directory entry with its URL slug.
type CountyView struct {
	county.County
	Slug string `json:"slug"`
}

func newCountyViews(counties []county.County) []*CountyView {
	views := make([]*CountyView, 0, len(counties))
	for _, c := range counties {
		views = append(views, &CountyView{County: c, Slug: c.Slug()})
	}

	return views
}

// MessageResponse is the body of endpoints with nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

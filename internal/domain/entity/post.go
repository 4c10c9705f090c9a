package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType is the kind of offer a listing makes.
type PostType string

const (
	PostTypeProduce    PostType = "produce"
	PostTypeEquipment  PostType = "equipment"
	PostTypeResource   PostType = "resource"
	PostTypeDiscussion PostType = "discussion"
)

// IsValid checks if the PostType is a valid value.
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeProduce, PostTypeEquipment, PostTypeResource, PostTypeDiscussion:
		return true
	default:
		return false
	}
}

// Visibility gates which viewers may see a listing.
type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityFarmersOnly Visibility = "farmers_only"
)

// IsValid checks if the Visibility is a valid value.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityFarmersOnly
}

// PostStatus is the lifecycle state of a listing.
type PostStatus string

const (
	PostStatusActive  PostStatus = "active"
	PostStatusSold    PostStatus = "sold"
	PostStatusExpired PostStatus = "expired"
	PostStatusDraft   PostStatus = "draft"
)

// IsValid checks if the PostStatus is a valid value.
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusActive, PostStatusSold, PostStatusExpired, PostStatusDraft:
		return true
	default:
		return false
	}
}

// SubProduct is one priced item inside a multi-product listing.
type SubProduct struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// Post is a marketplace listing owned by exactly one profile.
type Post struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Type        PostType
	Category    string
	Tags        []string
	Visibility  Visibility
	Status      PostStatus
	County      string
	City        string

	Price       *float64
	Unit        string
	Quantity    *float64
	SubProducts []SubProduct

	PickupAvailable   bool
	DeliveryAvailable bool
	Images            []string

	Seller *Profile // Populated by reads that join the owner profile.

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectivePrice is the listing price, else the lowest priced sub-product.
// It returns nil when nothing on the listing carries a price.
func (p *Post) EffectivePrice() *float64 {
	if p.Price != nil {
		return p.Price
	}

	var lowest *float64
	for i := range p.SubProducts {
		price := p.SubProducts[i].Price
		if price == nil {
			continue
		}
		if lowest == nil || *price < *lowest {
			lowest = price
		}
	}

	return lowest
}

// SellerName is the display name of the owner, empty when the owner is not loaded.
func (p *Post) SellerName() string {
	return p.Seller.DisplayName()
}

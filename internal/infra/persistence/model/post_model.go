package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SubProductJSON is one element of the posts.sub_products jsonb array.
type SubProductJSON struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// PostModel mirrors the 'posts' table. The feed reads by (status, visibility, created_at).
type PostModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text"`
	Type        string         `gorm:"type:varchar(32);not null"`
	Category    string         `gorm:"type:varchar(100)"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	Visibility  string         `gorm:"type:varchar(32);not null;index:idx_posts_feed,priority:2"`
	Status      string         `gorm:"type:varchar(32);not null;index:idx_posts_feed,priority:1"`
	County      string         `gorm:"type:varchar(32);index"`
	City        string         `gorm:"type:varchar(100)"`

	Price       *float64                            `gorm:"type:numeric(12,2)"`
	Unit        string                              `gorm:"type:varchar(50)"`
	Quantity    *float64                            `gorm:"type:numeric(12,2)"`
	SubProducts datatypes.JSONSlice[SubProductJSON] `gorm:"type:jsonb"`

	PickupAvailable   bool           `gorm:"not null"`
	DeliveryAvailable bool           `gorm:"not null"`
	Images            pq.StringArray `gorm:"type:text[]"`

	CreatedAt time.Time `gorm:"index:idx_posts_feed,priority:3,sort:desc"`
	UpdatedAt time.Time

	Seller *ProfileModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// SavedPostModel mirrors the 'saved_posts' table.
type SavedPostModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	Post *PostModel `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SavedPostModel) TableName() string {
	return "saved_posts"
}

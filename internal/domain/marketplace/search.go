package marketplace

import (
	"strings"

	"heyfarmer/internal/domain/entity"
	domainerrors "heyfarmer/internal/domain/errors"
)

// PriceBucket is a coarse price range filter.
type PriceBucket string

const (
	PriceAny     PriceBucket = ""
	PriceUnder25 PriceBucket = "under-25"
	Price25To100 PriceBucket = "25-100"
	PriceOver100 PriceBucket = "over-100"
)

// Contains reports whether price falls in the bucket. A listing without a
// price belongs to under-25 only.
func (b PriceBucket) Contains(price *float64) bool {
	switch b {
	case PriceAny:
		return true
	case PriceUnder25:
		return price == nil || *price < 25
	case Price25To100:
		return price != nil && *price >= 25 && *price <= 100
	case PriceOver100:
		return price != nil && *price > 100
	default:
		return false
	}
}

// ParsePriceBucket validates a raw bucket value. Empty input means no filter.
func ParsePriceBucket(s string) (PriceBucket, error) {
	switch b := PriceBucket(s); b {
	case PriceAny, PriceUnder25, Price25To100, PriceOver100:
		return b, nil
	default:
		return PriceAny, domainerrors.ErrValidationFailed.WithDetails("unknown price bucket: " + s)
	}
}

// DeliveryMethod filters on how the buyer receives the goods.
type DeliveryMethod string

const (
	DeliveryAny      DeliveryMethod = ""
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

// Accepts reports whether post offers the delivery method.
func (m DeliveryMethod) Accepts(post *entity.Post) bool {
	switch m {
	case DeliveryAny:
		return true
	case DeliveryPickup:
		return post.PickupAvailable
	case DeliveryDelivery:
		return post.DeliveryAvailable
	default:
		return false
	}
}

// ParseDeliveryMethod validates a raw delivery value. Empty input means no filter.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(s); m {
	case DeliveryAny, DeliveryPickup, DeliveryDelivery:
		return m, nil
	default:
		return DeliveryAny, domainerrors.ErrValidationFailed.WithDetails("unknown delivery method: " + s)
	}
}

// FilterSet holds the categorical filters. Zero-valued fields are inactive.
type FilterSet struct {
	PostType    entity.PostType
	County      string
	PriceBucket PriceBucket
	Delivery    DeliveryMethod
}

// Tokenize lowercases the query and splits it on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// SearchableText is the lowercased text a query is matched against.
func SearchableText(post *entity.Post) string {
	parts := []string{post.Title, post.Description, post.SellerName(), post.Category}
	parts = append(parts, post.Tags...)

	return strings.ToLower(strings.Join(parts, " "))
}

// MatchesText reports whether any token occurs in text. No tokens match everything.
//
// Multi-word queries are an OR of their tokens: "eggs honey" finds listings
// mentioning either word.
func MatchesText(text string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}

	return false
}

// MatchesFilters reports whether post satisfies every active filter.
func MatchesFilters(post *entity.Post, filters FilterSet) bool {
	if filters.PostType != "" && post.Type != filters.PostType {
		return false
	}
	if filters.County != "" && post.County != filters.County {
		return false
	}
	if !filters.PriceBucket.Contains(post.EffectivePrice()) {
		return false
	}

	return filters.Delivery.Accepts(post)
}

// Apply narrows listings to those matching query and filters. The input
// order is preserved.
func Apply(listings []*entity.Post, query string, filters FilterSet) []*entity.Post {
	tokens := Tokenize(query)
	out := make([]*entity.Post, 0, len(listings))
	for _, post := range listings {
		if post == nil {
			continue
		}
		if !MatchesText(SearchableText(post), tokens) {
			continue
		}
		if !MatchesFilters(post, filters) {
			continue
		}
		out = append(out, post)
	}

	return out
}

// MatchProfile applies the same token rule to the farmer directory.
func MatchProfile(profile *entity.Profile, tokens []string) bool {
	parts := []string{profile.Name, profile.FarmName, profile.Bio, profile.City}
	parts = append(parts, profile.GrowTags...)

	return MatchesText(strings.ToLower(strings.Join(parts, " ")), tokens)
}

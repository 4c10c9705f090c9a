// Package county is the fixed directory of Washington counties used for
// listing locations, profile locations and search filters.
//
// Every lookup is a map access against a constant table. Unknown input
// yields a zero value and false, never a panic.
package county

import (
	"math"
	"slices"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const slugSuffix = "-county"

// ID is the snake_case identifier stored on profiles and listings, e.g. "walla_walla".
type ID string

// Metro is a regional grouping of counties around a population center.
type Metro string

const (
	MetroNone              Metro = ""
	MetroPugetSound        Metro = "puget_sound"
	MetroSpokane           Metro = "spokane"
	MetroTriCities         Metro = "tri_cities"
	MetroPortlandVancouver Metro = "portland_vancouver"
	MetroBellingham        Metro = "bellingham"
	MetroWenatchee         Metro = "wenatchee"
	MetroYakima            Metro = "yakima"
)

// County is one row of the directory.
type County struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Metro     Metro     `json:"metro,omitempty"`
	Seat      string    `json:"seat"`
	SeatPoint orb.Point `json:"-"`
	Adjacent  []ID      `json:"adjacent"`
}

// Slug is the URL form of the county, e.g. "walla-walla-county".
func (c County) Slug() string {
	return Slugify(c.ID)
}

// Lookup returns the county for id.
func Lookup(id ID) (County, bool) {
	c, ok := table[id]

	return c, ok
}

// IsValid reports whether id names a known county.
func IsValid(id ID) bool {
	_, ok := table[id]

	return ok
}

// DisplayName returns the county's name, or "" when id is unknown.
func DisplayName(id ID) string {
	return table[id].Name
}

// MetroOf returns the metro grouping of id, MetroNone when unknown or ungrouped.
func MetroOf(id ID) Metro {
	return table[id].Metro
}

// Adjacent returns the neighbouring county ids, nil when id is unknown.
func Adjacent(id ID) []ID {
	c, ok := table[id]
	if !ok {
		return nil
	}

	return slices.Clone(c.Adjacent)
}

// Seat returns the county seat name, or "" when id is unknown.
func Seat(id ID) string {
	return table[id].Seat
}

// Slugify converts an id into its URL slug. Unknown ids yield "".
func Slugify(id ID) string {
	if !IsValid(id) {
		return ""
	}

	return strings.ReplaceAll(string(id), "_", "-") + slugSuffix
}

// Unslugify parses a slug back into an id. The "-county" suffix is optional
// and matching is case-insensitive.
func Unslugify(slug string) (ID, bool) {
	s := strings.ToLower(strings.TrimSpace(slug))
	s = strings.TrimSuffix(s, slugSuffix)
	if s == "" {
		return "", false
	}

	id := ID(strings.ReplaceAll(s, "-", "_"))
	if !IsValid(id) {
		return "", false
	}

	return id, true
}

// IsValidSlug reports whether slug names a known county.
func IsValidSlug(slug string) bool {
	_, ok := Unslugify(slug)

	return ok
}

// All returns every county ordered by display name.
func All() []County {
	out := make([]County, 0, len(table))
	for _, c := range table {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b County) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// InMetro returns the counties of a metro grouping ordered by display name.
func InMetro(metro Metro) []County {
	if metro == MetroNone {
		return nil
	}

	var out []County
	for _, c := range All() {
		if c.Metro == metro {
			out = append(out, c)
		}
	}

	return out
}

// Nearest returns the county whose seat is closest to point.
func Nearest(point orb.Point) County {
	var (
		best     County
		bestDist = math.Inf(1)
	)
	for _, c := range All() {
		if d := geo.Distance(point, c.SeatPoint); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

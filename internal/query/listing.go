package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/erazemk/lostfound/internal/model"
)

// Page sizes.
const (
	FeedLimit    = 9
	DefaultLimit = 12
	MaxLimit     = 100
)

// Listing is a parsed listing request. The zero value lists page 1 of all
// active items with DefaultLimit per page.
type Listing struct {
	Type     string
	Category string
	Search   string
	Location string
	Date     string // YYYY-MM-DD

	// Status filters by a single status. Only honoured with AllStatuses.
	Status string

	// AllStatuses drops the active-only base condition (admin dashboard).
	AllStatuses bool

	Page  int
	Limit int
}

// ParseListing reads listing parameters from a query string. Unparseable
// page or limit values fall back to their defaults; malformed type, date,
// or status values are rejected with a *model.ValidationError.
func ParseListing(v url.Values, defaultLimit int) (Listing, error) {
	l := Listing{
		Type:     strings.TrimSpace(v.Get("type")),
		Category: strings.TrimSpace(v.Get("category")),
		Search:   strings.TrimSpace(v.Get("search")),
		Location: strings.TrimSpace(v.Get("location")),
		Date:     strings.TrimSpace(v.Get("date")),
		Status:   strings.TrimSpace(v.Get("status")),
		Page:     atoiOr(v.Get("page"), 1),
		Limit:    atoiOr(v.Get("limit"), defaultLimit),
	}
	if l.Search == "" {
		l.Search = strings.TrimSpace(v.Get("q"))
	}
	if l.Limit < 1 {
		// An explicit non-positive limit clamps to 1 rather than the default.
		l.Limit = 1
	}

	if l.Type != "" && !model.ValidItemType(l.Type) {
		return Listing{}, model.InvalidField("type", "must be lost or found")
	}
	if l.Status != "" && !model.ValidItemStatus(l.Status) {
		return Listing{}, model.InvalidField("status", "must be active, pending or resolved")
	}
	if l.Date != "" {
		d, err := ParseDate(l.Date)
		if err != nil {
			return Listing{}, model.InvalidField("date", "expected YYYY-MM-DD")
		}
		l.Date = d
	}

	return l.Normalize(defaultLimit), nil
}

// ParseDate validates a calendar date and returns it in canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.Format(model.DateLayout), nil
}

// Normalize clamps limit to [1, MaxLimit] and page to [1, maxPage(limit)].
// A zero limit becomes defaultLimit.
func (l Listing) Normalize(defaultLimit int) Listing {
	if l.Page < 1 {
		l.Page = 1
	}
	if l.Limit == 0 {
		l.Limit = defaultLimit
	}
	if l.Limit < 1 {
		l.Limit = 1
	}
	if l.Limit > MaxLimit {
		l.Limit = MaxLimit
	}
	if l.Page > maxPage(l.Limit) {
		l.Page = maxPage(l.Limit)
	}
	return l
}

// maxPage is the last page whose offset still fits in an int.
func maxPage(limit int) int {
	return math.MaxInt/limit + 1
}

// Offset is the number of items skipped before the current page. It never
// overflows; pages beyond maxPage saturate.
func (l Listing) Offset() int {
	if l.Page <= 1 || l.Limit < 1 {
		return 0
	}
	if l.Page > maxPage(l.Limit) {
		return math.MaxInt / l.Limit * l.Limit
	}
	return (l.Page - 1) * l.Limit
}

// Pred returns the predicate selecting the listed items.
func (l Listing) Pred() Pred {
	var preds []Pred

	switch {
	case !l.AllStatuses:
		preds = append(preds, Eq(Status, model.ItemStatusActive))
	case l.Status != "":
		preds = append(preds, Eq(Status, l.Status))
	}
	if l.Type != "" {
		preds = append(preds, Eq(Type, l.Type))
	}
	if l.Category != "" {
		preds = append(preds, Eq(Category, l.Category))
	}
	if l.Location != "" {
		preds = append(preds, Contains(Location, l.Location))
	}
	if l.Date != "" {
		preds = append(preds, Eq(Date, l.Date))
	}
	if l.Search != "" {
		preds = append(preds, Or(Contains(Title, l.Search), Contains(Description, l.Search)))
	}

	return And(preds...)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

package lostfound

import (
	"context"
	"log/slog"

	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

// List returns one page of active items matching l. On failure the page is
// empty and the error is a *model.StoreError.
func (s *Service) List(ctx context.Context, l query.Listing) (query.Page, error) {
	l.AllStatuses = false
	return s.page(ctx, l)
}

// AdminList is List across all statuses, optionally narrowed by l.Status.
func (s *Service) AdminList(ctx context.Context, sess *auth.Session, l query.Listing) (query.Page, error) {
	if err := requireAdmin(sess); err != nil {
		return query.EmptyPage(l.Normalize(query.DefaultLimit)), err
	}
	l.AllStatuses = true
	return s.page(ctx, l)
}

func (s *Service) page(ctx context.Context, l query.Listing) (query.Page, error) {
	l = l.Normalize(query.DefaultLimit)
	pred := l.Pred()

	items, err := s.Store.Find(ctx, pred, l.Offset(), l.Limit)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		return query.EmptyPage(l), storeErr("listing items", err)
	}
	total, err := s.Store.Count(ctx, pred)
	if err != nil {
		slog.Error("failed to count items", "error", err)
		return query.EmptyPage(l), storeErr("counting items", err)
	}

	return query.NewPage(items, total, l), nil
}

// Search returns every active item matching l, ignoring pagination.
func (s *Service) Search(ctx context.Context, l query.Listing) ([]model.Item, error) {
	l.AllStatuses = false
	items, err := s.Store.Find(ctx, l.Pred(), 0, 0)
	if err != nil {
		slog.Error("failed to search items", "error", err)
		return []model.Item{}, storeErr("searching items", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// FeedStats are the counters shown on the public front page.
type FeedStats struct {
	Lost     int `json:"lost"`
	Found    int `json:"found"`
	Resolved int `json:"resolved"`
	Total    int `json:"total"`
}

// Feed is the public front page: the newest active items and counters.
type Feed struct {
	Items []model.Item `json:"items"`
	Stats FeedStats    `json:"stats"`
}

// Feed returns the newest query.FeedLimit active items. It always returns a
// usable Feed; on failure it is empty and the error is reported alongside.
func (s *Service) Feed(ctx context.Context) (Feed, error) {
	feed := Feed{Items: []model.Item{}}

	items, err := s.Store.Find(ctx, query.Listing{}.Pred(), 0, query.FeedLimit)
	if err != nil {
		return feed, storeErr("loading feed", err)
	}

	var stats FeedStats
	counts := []struct {
		dst  *int
		pred query.Pred
	}{
		{&stats.Lost, query.And(query.Eq(query.Type, model.ItemTypeLost), query.Eq(query.Status, model.ItemStatusActive))},
		{&stats.Found, query.And(query.Eq(query.Type, model.ItemTypeFound), query.Eq(query.Status, model.ItemStatusActive))},
		{&stats.Resolved, query.Eq(query.Status, model.ItemStatusResolved)},
		{&stats.Total, nil},
	}
	for _, c := range counts {
		n, err := s.Store.Count(ctx, c.pred)
		if err != nil {
			return feed, storeErr("counting feed stats", err)
		}
		*c.dst = n
	}

	if items != nil {
		feed.Items = items
	}
	feed.Stats = stats
	return feed, nil
}

// AdminStats are the counters shown on the admin dashboard.
type AdminStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	Lost     int `json:"lost"`
	Found    int `json:"found"`
}

// Stats returns dashboard counters across all items.
func (s *Service) Stats(ctx context.Context, sess *auth.Session) (AdminStats, error) {
	var stats AdminStats
	if err := requireAdmin(sess); err != nil {
		return stats, err
	}

	counts := []struct {
		dst  *int
		pred query.Pred
	}{
		{&stats.Total, nil},
		{&stats.Active, query.Eq(query.Status, model.ItemStatusActive)},
		{&stats.Pending, query.Eq(query.Status, model.ItemStatusPending)},
		{&stats.Resolved, query.Eq(query.Status, model.ItemStatusResolved)},
		{&stats.Lost, query.Eq(query.Type, model.ItemTypeLost)},
		{&stats.Found, query.Eq(query.Type, model.ItemTypeFound)},
	}
	for _, c := range counts {
		n, err := s.Store.Count(ctx, c.pred)
		if err != nil {
			return AdminStats{}, storeErr("counting stats", err)
		}
		*c.dst = n
	}
	return stats, nil
}

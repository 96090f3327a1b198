package lostfound

import (
	"context"
	"log/slog"
	"strings"

	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

// MatchPred selects active opposite-type items in the same category whose
// text overlaps with item: the candidate title contains item's title, the
// candidate description contains item's title, or the candidate title
// contains the first word of item's description.
func MatchPred(item *model.Item) query.Pred {
	var overlap []query.Pred
	if title := strings.TrimSpace(item.Title); title != "" {
		overlap = append(overlap,
			query.Contains(query.Title, title),
			query.Contains(query.Description, title),
		)
	}
	if words := strings.Fields(item.Description); len(words) > 0 {
		overlap = append(overlap, query.Contains(query.Title, words[0]))
	}

	return query.And(
		query.Eq(query.Status, model.ItemStatusActive),
		query.Eq(query.Type, model.OppositeType(item.Type)),
		query.Eq(query.Category, item.Category),
		query.Or(overlap...),
	)
}

// FindMatches returns potential counterparts for item, newest first.
// Lookup failures are logged and reported as no matches.
func (s *Service) FindMatches(ctx context.Context, item *model.Item) []model.Item {
	matches, err := s.Store.Find(ctx, MatchPred(item), 0, 0)
	if err != nil {
		slog.Error("match lookup failed", "error", &model.MatchFinderError{ItemID: item.ID, Err: err})
		return nil
	}
	if len(matches) > 0 {
		slog.Info("potential matches", "item", item.ID, "count", len(matches))
	}
	return matches
}

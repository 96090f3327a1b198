package lostfound

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/lostfound/internal/model"
)

func TestMatchBlueBackpack(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	found, err := svc.Report(ctx, model.ItemTypeFound, report("blue backpack", "left on a bench", "Bags"), nil)
	require.NoError(t, err)

	lost, err := svc.Report(ctx, model.ItemTypeLost, report("Blue Backpack", "Jansport with laptop", "Bags"), nil)
	require.NoError(t, err)

	require.Len(t, lost.Matches, 1)
	assert.Equal(t, found.Item.ID, lost.Matches[0].ID)
}

func TestMatchPredClauses(t *testing.T) {
	lost := &model.Item{
		Type:        model.ItemTypeLost,
		Title:       "Wallet",
		Description: "Leather, brown",
		Category:    "Wallets",
	}

	candidate := func(mod func(*model.Item)) *model.Item {
		it := &model.Item{
			Type:        model.ItemTypeFound,
			Status:      model.ItemStatusActive,
			Title:       "something",
			Description: "something else",
			Category:    "Wallets",
		}
		mod(it)
		return it
	}
	pred := MatchPred(lost)

	assert.True(t, pred.Match(candidate(func(it *model.Item) { it.Title = "Black wallet" })), "title contains title")
	assert.True(t, pred.Match(candidate(func(it *model.Item) { it.Description = "a WALLET with cards" })), "description contains title")
	assert.True(t, pred.Match(candidate(func(it *model.Item) { it.Title = "leather, brown purse" })), "title contains first description word")
	assert.False(t, pred.Match(candidate(func(it *model.Item) {})), "no overlap")
	assert.False(t, pred.Match(candidate(func(it *model.Item) { it.Title = "Wallet"; it.Type = model.ItemTypeLost })), "same type")
	assert.False(t, pred.Match(candidate(func(it *model.Item) { it.Title = "Wallet"; it.Category = "wallets" })), "category is exact")
	assert.False(t, pred.Match(candidate(func(it *model.Item) { it.Title = "Wallet"; it.Status = model.ItemStatusResolved })), "inactive")
}

func TestMatchPredEmptyDescription(t *testing.T) {
	item := &model.Item{Type: model.ItemTypeFound, Title: "Keys", Description: "   ", Category: "Keys"}
	other := &model.Item{Type: model.ItemTypeLost, Status: model.ItemStatusActive, Title: "Bike", Description: "red", Category: "Keys"}

	assert.False(t, MatchPred(item).Match(other))
}

func TestMatchFailureDoesNotFailReport(t *testing.T) {
	st := &memStore{}
	notifier := &recordingNotifier{}
	svc := &Service{Store: brokenFind{st}, Requests: st, Notifier: notifier, Now: clock()}

	created, err := svc.Report(context.Background(), model.ItemTypeLost, report("Blue Backpack", "Jansport", "Bags"), nil)
	require.NoError(t, err)
	assert.Empty(t, created.Matches)
	assert.Len(t, st.items, 1, "item is persisted despite the failed match lookup")
	assert.Empty(t, notifier.calls)
}

func TestMatchesAreNotified(t *testing.T) {
	svc, _ := newTestService()
	notifier := &recordingNotifier{}
	svc.Notifier = notifier
	ctx := context.Background()

	a, _ := svc.Report(ctx, model.ItemTypeFound, report("Calculator", "TI-84", "Electronics"), nil)
	b, _ := svc.Report(ctx, model.ItemTypeFound, report("Graphing calculator", "black", "Electronics"), nil)
	svc.Report(ctx, model.ItemTypeLost, report("Phone", "cracked", "Electronics"), nil)

	assert.Len(t, notifier.calls, 0, "no notification without matches")

	created, err := svc.Report(ctx, model.ItemTypeLost, report("calculator", "TI-84 plus", "Electronics"), nil)
	require.NoError(t, err)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, []int64{b.Item.ID, a.Item.ID}, notifier.calls[0], "newest first")
	assert.Len(t, created.Matches, 2)
}

func TestNotifierFailureIsSwallowed(t *testing.T) {
	svc, _ := newTestService()
	svc.Notifier = &recordingNotifier{err: errBroken}
	ctx := context.Background()

	svc.Report(ctx, model.ItemTypeFound, report("Keys", "car keys", "Keys"), nil)
	created, err := svc.Report(ctx, model.ItemTypeLost, report("Keys", "house keys", "Keys"), nil)

	require.NoError(t, err)
	assert.Len(t, created.Matches, 1)
}

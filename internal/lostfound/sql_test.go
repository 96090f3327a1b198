package lostfound

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/lostfound/internal/db"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

func newSQLService(t *testing.T) *Service {
	t.Helper()
	svc := New(db.NewTestDB(t), nil, nil)
	svc.Now = clock()
	return svc
}

func TestSQLReportAndMatch(t *testing.T) {
	svc := newSQLService(t)
	ctx := context.Background()

	found, err := svc.Report(ctx, model.ItemTypeFound, report("blue backpack", "left in lecture hall", "Bags"), nil)
	require.NoError(t, err)
	svc.Report(ctx, model.ItemTypeFound, report("blue backpack", "other category", "Electronics"), nil)

	lost, err := svc.Report(ctx, model.ItemTypeLost, report("Blue Backpack", "Jansport", "Bags"), nil)
	require.NoError(t, err)

	require.Len(t, lost.Matches, 1)
	assert.Equal(t, found.Item.ID, lost.Matches[0].ID)

	got, err := svc.Item(ctx, lost.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Backpack", got.Title)
	assert.Equal(t, "ana@uni.si", got.ContactInfo.Email)
	assert.True(t, got.CreatedAt.Equal(lost.Item.CreatedAt))
}

func TestSQLListingMatchesMemory(t *testing.T) {
	sqlSvc := newSQLService(t)
	memSvc, _ := newTestService()
	ctx := context.Background()

	inputs := []struct {
		itemType string
		in       ReportInput
	}{
		{model.ItemTypeLost, report("Umbrella", "black folding", "Other")},
		{model.ItemTypeFound, report("Black hat", "wool", "Clothing")},
		{model.ItemTypeFound, report("Phone", "Black iPhone 100% charged", "Electronics")},
		{model.ItemTypeLost, report("Student card", "name: Ana_Novak", "Cards")},
		{model.ItemTypeLost, report("Hat", "red", "Clothing")},
	}
	for _, in := range inputs {
		_, err := sqlSvc.Report(ctx, in.itemType, in.in, nil)
		require.NoError(t, err)
		_, err = memSvc.Report(ctx, in.itemType, in.in, nil)
		require.NoError(t, err)
	}

	listings := []query.Listing{
		{},
		{Type: model.ItemTypeFound},
		{Category: "Clothing"},
		{Search: "BLACK"},
		{Search: "100%"},
		{Search: "_"},
		{Location: "library"},
		{Date: "2024-03-01", Limit: 2, Page: 2},
	}
	for _, l := range listings {
		want, err := memSvc.List(ctx, l)
		require.NoError(t, err)
		got, err := sqlSvc.List(ctx, l)
		require.NoError(t, err)

		assert.Equal(t, pageIDs(want), pageIDs(got), "listing %+v", l)
		assert.Equal(t, want.Total, got.Total, "listing %+v", l)
		assert.Equal(t, want.TotalPages, got.TotalPages, "listing %+v", l)
	}
}

func TestSQLDeleteRemovesRequests(t *testing.T) {
	svc := newSQLService(t)
	ctx := context.Background()

	ids := seed(t, svc, 2, model.ItemTypeFound, "Keys")
	_, err := svc.Claim(ctx, ids[0], validClaim())
	require.NoError(t, err)
	_, err = svc.Contact(ctx, ids[1], ContactInput{UserName: "A", UserEmail: "a@b.si", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, adminSession(), ids[0]))

	err = svc.Delete(ctx, adminSession(), ids[0])
	var nerr *model.NotFoundError
	assert.ErrorAs(t, err, &nerr)

	reqs, err := svc.ItemRequests(ctx, adminSession(), ids[1])
	require.NoError(t, err)
	assert.Len(t, reqs, 1)

	stats, err := svc.Stats(ctx, adminSession())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestSQLHugePageIsEmpty(t *testing.T) {
	svc := newSQLService(t)
	seed(t, svc, 3, model.ItemTypeFound, "Keys")

	l, err := query.ParseListing(url.Values{"page": {"9223372036854775807"}, "limit": {"12"}}, query.DefaultLimit)
	require.NoError(t, err)

	p, err := svc.List(context.Background(), l)
	require.NoError(t, err)
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.Total)
}

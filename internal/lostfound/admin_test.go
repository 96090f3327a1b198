package lostfound

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

func TestAdminOperationsRequireSession(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()
	ids := seed(t, svc, 1, model.ItemTypeLost, "Bags")

	expired := &auth.Session{UserID: 1, Username: "admin", ExpiresAt: time.Now().Add(-time.Minute)}
	for _, sess := range []*auth.Session{nil, {}, expired} {
		_, err := svc.UpdateStatus(ctx, sess, ids[0], model.ItemStatusResolved)
		assert.ErrorIs(t, err, model.ErrUnauthorized)

		err = svc.Delete(ctx, sess, ids[0])
		assert.ErrorIs(t, err, model.ErrUnauthorized)

		_, err = svc.AdminList(ctx, sess, query.Listing{})
		assert.ErrorIs(t, err, model.ErrUnauthorized)

		_, err = svc.ItemRequests(ctx, sess, ids[0])
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	}

	require.Len(t, st.items, 1)
	assert.Equal(t, model.ItemStatusActive, st.items[0].Status)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	ids := seed(t, svc, 1, model.ItemTypeFound, "Keys")

	item, err := svc.UpdateStatus(ctx, adminSession(), ids[0], model.ItemStatusPending)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStatusPending, item.Status)

	_, err = svc.UpdateStatus(ctx, adminSession(), ids[0], "archived")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	_, err = svc.UpdateStatus(ctx, adminSession(), 404, model.ItemStatusResolved)
	var nerr *model.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestDelete(t *testing.T) {
	svc, st := newTestService()
	images := &fakeImages{}
	svc.Images = images
	ctx := context.Background()

	created, err := svc.Report(ctx, model.ItemTypeFound, report("Keys", "car", "Keys"), strings.NewReader("img"))
	require.NoError(t, err)
	other := seed(t, svc, 1, model.ItemTypeLost, "Bags")

	require.NoError(t, svc.Delete(ctx, adminSession(), created.Item.ID))
	assert.Equal(t, []string{created.Item.Image}, images.removed)

	_, err = svc.Item(ctx, created.Item.ID)
	var nerr *model.NotFoundError
	assert.ErrorAs(t, err, &nerr)

	require.Len(t, st.items, 1)
	assert.Equal(t, other[0], st.items[0].ID)
}

func TestDeleteMissingLeavesStoreUnchanged(t *testing.T) {
	svc, st := newTestService()
	seed(t, svc, 2, model.ItemTypeLost, "Bags")
	before := append([]model.Item(nil), st.items...)

	err := svc.Delete(context.Background(), adminSession(), 12345)

	var nerr *model.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, int64(12345), nerr.ID)
	assert.Equal(t, before, st.items)
}

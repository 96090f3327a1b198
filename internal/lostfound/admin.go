package lostfound

import (
	"context"
	"log/slog"

	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/model"
)

// UpdateStatus sets an item's status. Only the status of an item is ever
// modified after creation.
func (s *Service) UpdateStatus(ctx context.Context, sess *auth.Session, id int64, status string) (*model.Item, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if !model.ValidItemStatus(status) {
		return nil, model.InvalidField("status", "must be active, pending or resolved")
	}

	item, err := s.Store.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, storeErr("updating item status", err)
	}
	if item == nil {
		return nil, &model.NotFoundError{ID: id}
	}

	slog.Info("item status updated", "user", sess.Username, "item", id, "status", status)
	return item, nil
}

// Delete permanently removes an item and its photo.
func (s *Service) Delete(ctx context.Context, sess *auth.Session, id int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	item, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return storeErr("getting item", err)
	}
	if item == nil {
		return &model.NotFoundError{ID: id}
	}

	ok, err := s.Store.Delete(ctx, id)
	if err != nil {
		return storeErr("deleting item", err)
	}
	if !ok {
		return &model.NotFoundError{ID: id}
	}

	if item.Image != "" && s.Images != nil {
		if err := s.Images.Remove(item.Image); err != nil {
			slog.Warn("failed to remove item image", "item", id, "image", item.Image, "error", err)
		}
	}

	slog.Info("item deleted", "user", sess.Username, "item", id, "title", item.Title)
	return nil
}

// ItemRequests lists contact and claim requests left on an item.
func (s *Service) ItemRequests(ctx context.Context, sess *auth.Session, itemID int64) ([]model.ContactRequest, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := s.Item(ctx, itemID); err != nil {
		return nil, err
	}

	reqs, err := s.Requests.ListRequests(ctx, itemID)
	if err != nil {
		return nil, storeErr("listing requests", err)
	}
	if reqs == nil {
		reqs = []model.ContactRequest{}
	}
	return reqs, nil
}

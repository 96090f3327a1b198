package lostfound

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

// ReportInput is a submitted lost or found report.
type ReportInput struct {
	ItemName        string `json:"itemName"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	ContactName     string `json:"contactName"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	StorageLocation string `json:"storageLocation"`
}

// Validate checks required fields in submission order and returns a
// *model.ValidationError naming the first one missing.
func (in *ReportInput) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"itemName", in.ItemName},
		{"description", in.Description},
		{"category", in.Category},
		{"location", in.Location},
		{"date", in.Date},
		{"contactName", in.ContactName},
		{"contactEmail", in.ContactEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return model.MissingField(f.name)
		}
	}

	if _, err := query.ParseDate(in.Date); err != nil {
		return model.InvalidField("date", "expected YYYY-MM-DD")
	}
	return nil
}

// Created is the outcome of a successful report.
type Created struct {
	Item    *model.Item
	Matches []model.Item
}

// Report validates and stores a new lost or found item, with an optional
// photo, and looks for potential matches. Match lookup never fails the report.
func (s *Service) Report(ctx context.Context, itemType string, in ReportInput, image io.Reader) (*Created, error) {
	if !model.ValidItemType(itemType) {
		return nil, model.InvalidField("type", "must be lost or found")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	date, _ := query.ParseDate(in.Date)

	item := &model.Item{
		Type:        itemType,
		Title:       strings.TrimSpace(in.ItemName),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Location:    strings.TrimSpace(in.Location),
		Date:        date,
		ContactInfo: model.ContactInfo{
			Name:  strings.TrimSpace(in.ContactName),
			Email: strings.TrimSpace(in.ContactEmail),
			Phone: strings.TrimSpace(in.ContactPhone),
		},
		Status:    model.ItemStatusActive,
		CreatedAt: s.now(),
	}
	if itemType == model.ItemTypeFound {
		item.StorageLocation = strings.TrimSpace(in.StorageLocation)
	}

	if image != nil {
		if s.Images == nil {
			return nil, &model.UploadError{Message: "Image uploads are not available."}
		}
		ref, err := s.Images.Save(image)
		if err != nil {
			return nil, fmt.Errorf("saving image: %w", err)
		}
		item.Image = ref
	}

	created, err := s.Store.Insert(ctx, item)
	if err != nil {
		if item.Image != "" {
			if rerr := s.Images.Remove(item.Image); rerr != nil {
				slog.Warn("failed to remove orphaned image", "image", item.Image, "error", rerr)
			}
		}
		return nil, storeErr("creating item", err)
	}

	slog.Info("item reported", "item", created.ID, "type", created.Type, "category", created.Category)

	matches := s.FindMatches(ctx, created)
	if len(matches) > 0 && s.Notifier != nil {
		if err := s.Notifier.NotifyMatches(ctx, created, matches); err != nil {
			slog.Warn("failed to deliver match notification", "item", created.ID, "error", err)
		}
	}

	return &Created{Item: created, Matches: matches}, nil
}

// Item returns a single item of any status.
func (s *Service) Item(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("getting item", err)
	}
	if item == nil {
		return nil, &model.NotFoundError{ID: id}
	}
	return item, nil
}

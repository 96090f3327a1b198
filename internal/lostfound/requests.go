package lostfound

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/erazemk/lostfound/internal/model"
)

// ContactInput is a message to the reporter of an item.
type ContactInput struct {
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
	Message   string `json:"message"`
}

// ClaimInput is an ownership claim on a found item.
type ClaimInput struct {
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	UserPhone      string `json:"userPhone"`
	StudentID      string `json:"studentId"`
	Proof          string `json:"proof"`
	CollectionTime string `json:"collectionTime"`
}

type field struct {
	name  string
	value string
}

func firstMissing(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return model.MissingField(f.name)
		}
	}
	return nil
}

func validateEmail(name, value string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Name != "" || !strings.Contains(addr.Address, ".") {
		return model.InvalidField(name, "not a valid email address")
	}
	return nil
}

// Validate checks the required contact fields.
func (in *ContactInput) Validate() error {
	if err := firstMissing(
		field{"userName", in.UserName},
		field{"userEmail", in.UserEmail},
		field{"message", in.Message},
	); err != nil {
		return err
	}
	return validateEmail("userEmail", in.UserEmail)
}

// Validate checks the required claim fields.
func (in *ClaimInput) Validate() error {
	if err := firstMissing(
		field{"userName", in.UserName},
		field{"userEmail", in.UserEmail},
		field{"userPhone", in.UserPhone},
		field{"studentId", in.StudentID},
		field{"proof", in.Proof},
		field{"collectionTime", in.CollectionTime},
	); err != nil {
		return err
	}
	return validateEmail("userEmail", in.UserEmail)
}

// Contact records a contact request on an active item.
func (s *Service) Contact(ctx context.Context, itemID int64, in ContactInput) (*model.ContactRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.requestable(ctx, itemID); err != nil {
		return nil, err
	}

	return s.saveRequest(ctx, &model.ContactRequest{
		ItemID:  itemID,
		Kind:    model.RequestKindContact,
		Name:    strings.TrimSpace(in.UserName),
		Email:   strings.TrimSpace(in.UserEmail),
		Phone:   strings.TrimSpace(in.UserPhone),
		Message: strings.TrimSpace(in.Message),
	})
}

// Claim records an ownership claim on an active found item.
func (s *Service) Claim(ctx context.Context, itemID int64, in ClaimInput) (*model.ContactRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item, err := s.requestable(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Type != model.ItemTypeFound {
		return nil, &model.ValidationError{Field: "itemId", Message: "Only found items can be claimed."}
	}

	return s.saveRequest(ctx, &model.ContactRequest{
		ItemID:         itemID,
		Kind:           model.RequestKindClaim,
		Name:           strings.TrimSpace(in.UserName),
		Email:          strings.TrimSpace(in.UserEmail),
		Phone:          strings.TrimSpace(in.UserPhone),
		StudentID:      strings.TrimSpace(in.StudentID),
		Proof:          strings.TrimSpace(in.Proof),
		CollectionTime: strings.TrimSpace(in.CollectionTime),
	})
}

// requestable returns the item if it can still receive requests.
func (s *Service) requestable(ctx context.Context, itemID int64) (*model.Item, error) {
	item, err := s.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != model.ItemStatusActive {
		return nil, &model.ValidationError{Field: "itemId", Message: "This item is no longer accepting requests."}
	}
	return item, nil
}

func (s *Service) saveRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error) {
	req.CreatedAt = s.now()
	saved, err := s.Requests.InsertRequest(ctx, req)
	if err != nil {
		return nil, storeErr("saving request", err)
	}
	slog.Info("request submitted", "item", req.ItemID, "kind", req.Kind)
	return saved, nil
}

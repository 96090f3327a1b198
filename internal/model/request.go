package model

import "time"

// ContactRequest is a message left on an item by another user: either a
// plain contact request or an ownership claim on a found item.
type ContactRequest struct {
	ID             int64     `json:"id"`
	ItemID         int64     `json:"itemId"`
	Kind           string    `json:"kind"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Message        string    `json:"message,omitempty"`
	StudentID      string    `json:"studentId,omitempty"`
	Proof          string    `json:"proof,omitempty"`
	CollectionTime string    `json:"collectionTime,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Request kinds.
const (
	RequestKindContact = "contact"
	RequestKindClaim   = "claim"
)

package model

import "time"

// Item is a lost or found report.
type Item struct {
	ID              int64       `json:"id"`
	Type            string      `json:"type"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	Location        string      `json:"location"`
	Date            string      `json:"date"`
	StorageLocation string      `json:"storageLocation,omitempty"`
	ContactInfo     ContactInfo `json:"contactInfo"`
	Image           string      `json:"image,omitempty"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// ContactInfo is how the reporter of an item can be reached.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Item types.
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// Item statuses.
const (
	ItemStatusActive   = "active"
	ItemStatusPending  = "pending"
	ItemStatusResolved = "resolved"
)

// DateLayout is the format of Item.Date.
const DateLayout = "2006-01-02"

// ValidItemType reports whether t is a known item type.
func ValidItemType(t string) bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// ValidItemStatus reports whether s is a known item status.
func ValidItemStatus(s string) bool {
	switch s {
	case ItemStatusActive, ItemStatusPending, ItemStatusResolved:
		return true
	}
	return false
}

// OppositeType returns the type a match candidate must have.
func OppositeType(t string) string {
	if t == ItemTypeLost {
		return ItemTypeFound
	}
	return ItemTypeLost
}

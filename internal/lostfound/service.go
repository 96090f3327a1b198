// Package lostfound implements the lost-and-found board: reporting items,
// listing and searching them, surfacing potential matches, contact and claim
// requests, and the administrator's moderation operations.
package lostfound

import (
	"database/sql"
	"time"

	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/notify"
)

// Service holds the dependencies of all board operations.
type Service struct {
	Store    Store
	Requests RequestStore
	Images   Images          // optional; reports with photos fail without it
	Notifier notify.Notifier // optional
	Now      func() time.Time
}

// New returns a Service on the SQLite database.
func New(db *sql.DB, images Images, notifier notify.Notifier) *Service {
	st := NewSQLStore(db)
	return &Service{
		Store:    st,
		Requests: st,
		Images:   images,
		Notifier: notifier,
		Now:      time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func requireAdmin(sess *auth.Session) error {
	if !auth.IsAuthorized(sess) {
		return model.ErrUnauthorized
	}
	return nil
}

func storeErr(op string, err error) error {
	return &model.StoreError{Op: op, Err: err}
}

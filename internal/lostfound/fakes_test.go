package lostfound

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/erazemk/lostfound/internal/auth"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

// memStore evaluates predicates in memory with the same ordering as SQLite.
type memStore struct {
	mu       sync.Mutex
	items    []model.Item
	requests []model.ContactRequest
	nextID   int64
}

func (m *memStore) Find(_ context.Context, where query.Pred, offset, limit int) ([]model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Item
	for i := range m.items {
		if where == nil || where.Match(&m.items[i]) {
			out = append(out, m.items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Count(ctx context.Context, where query.Pred) (int, error) {
	items, _ := m.Find(ctx, where, 0, 0)
	return len(items), nil
}

func (m *memStore) FindByID(_ context.Context, id int64) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, nil
}

func (m *memStore) Insert(_ context.Context, item *model.Item) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	it := *item
	it.ID = m.nextID
	m.items = append(m.items, it)
	return &it, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id int64, status string) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			it := m.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (m *memStore) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) InsertRequest(_ context.Context, req *model.ContactRequest) (*model.ContactRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := *req
	r.ID = int64(len(m.requests) + 1)
	m.requests = append(m.requests, r)
	return &r, nil
}

func (m *memStore) ListRequests(_ context.Context, itemID int64) ([]model.ContactRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.ContactRequest
	for _, r := range m.requests {
		if r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}

var errBroken = errors.New("store unavailable")

// brokenFind fails every Find and Count while delegating the rest.
type brokenFind struct {
	*memStore
}

func (b brokenFind) Find(context.Context, query.Pred, int, int) ([]model.Item, error) {
	return nil, errBroken
}

func (b brokenFind) Count(context.Context, query.Pred) (int, error) {
	return 0, errBroken
}

// brokenInsert fails every Insert.
type brokenInsert struct {
	*memStore
}

func (b brokenInsert) Insert(context.Context, *model.Item) (*model.Item, error) {
	return nil, errBroken
}

type fakeImages struct {
	saved   []string
	removed []string
	err     error
}

func (f *fakeImages) Save(r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	io.Copy(io.Discard, r)
	ref := "/uploads/test.jpg"
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeImages) Remove(ref string) error {
	f.removed = append(f.removed, ref)
	return nil
}

type recordingNotifier struct {
	calls [][]int64
	err   error
}

func (r *recordingNotifier) NotifyMatches(_ context.Context, _ *model.Item, matches []model.Item) error {
	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	r.calls = append(r.calls, ids)
	return r.err
}

// clock returns successive timestamps one minute apart.
func clock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newTestService() (*Service, *memStore) {
	st := &memStore{}
	return &Service{Store: st, Requests: st, Now: clock()}, st
}

func adminSession() *auth.Session {
	return &auth.Session{UserID: 1, Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}
}

func report(title, description, category string) ReportInput {
	return ReportInput{
		ItemName:     title,
		Description:  description,
		Category:     category,
		Location:     "Main Library",
		Date:         "2024-03-01",
		ContactName:  "Ana",
		ContactEmail: "ana@uni.si",
	}
}

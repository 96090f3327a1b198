package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/erazemk/lostfound/internal/lostfound"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
	"github.com/erazemk/lostfound/internal/upload"
)

// maxReportBody bounds a report request: the photo plus form fields.
const maxReportBody = upload.MaxSize + 1<<20

// ItemsHandler handles the public item endpoints.
type ItemsHandler struct {
	Service *lostfound.Service
}

type searchResponse struct {
	Success bool         `json:"success"`
	Items   []model.Item `json:"items"`
	Count   int          `json:"count"`
}

type reportResponse struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Item       *model.Item  `json:"item"`
	Matches    []model.Item `json:"matches"`
	MatchCount int          `json:"matchCount"`
}

type requestResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Request *model.ContactRequest `json:"request"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	l, err := query.ParseListing(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := h.Service.List(r.Context(), l)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, page)
		return
	}
	jsonResponse(w, http.StatusOK, page)
}

// Feed handles GET /api/items/feed. It never fails; an unavailable store
// yields an empty feed.
func (h *ItemsHandler) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Service.Feed(r.Context())
	if err != nil {
		slog.Error("failed to load feed", "error", err)
	}
	jsonResponse(w, http.StatusOK, feed)
}

// Search handles GET /api/items/search.
func (h *ItemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	l, err := query.ParseListing(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.Service.Search(r.Context(), l)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, searchResponse{Items: items})
		return
	}
	jsonResponse(w, http.StatusOK, searchResponse{Success: true, Items: items, Count: len(items)})
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Service.Item(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// ReportLost handles POST /api/items/lost.
func (h *ItemsHandler) ReportLost(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, model.ItemTypeLost, "Lost item reported successfully!")
}

// ReportFound handles POST /api/items/found.
func (h *ItemsHandler) ReportFound(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, model.ItemTypeFound, "Found item reported successfully!")
}

func (h *ItemsHandler) report(w http.ResponseWriter, r *http.Request, itemType, message string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReportBody)

	if err := parseForm(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, http.StatusBadRequest, "File too large. Maximum size is 5MB.")
			return
		}
		jsonError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	in := lostfound.ReportInput{
		ItemName:        r.FormValue("itemName"),
		Description:     r.FormValue("description"),
		Category:        r.FormValue("category"),
		Location:        r.FormValue("location"),
		Date:            r.FormValue("date"),
		ContactName:     r.FormValue("contactName"),
		ContactEmail:    r.FormValue("contactEmail"),
		ContactPhone:    r.FormValue("contactPhone"),
		StorageLocation: r.FormValue("storageLocation"),
	}

	var image io.Reader
	if r.MultipartForm != nil {
		file, _, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			image = file
		case !errors.Is(err, http.ErrMissingFile):
			jsonError(w, http.StatusBadRequest, "invalid image upload")
			return
		}
	}

	created, err := h.Service.Report(r.Context(), itemType, in, image)
	if err != nil {
		writeError(w, err)
		return
	}

	matches := created.Matches
	if matches == nil {
		matches = []model.Item{}
	}
	jsonResponse(w, http.StatusCreated, reportResponse{
		Success:    true,
		Message:    message,
		Item:       created.Item,
		Matches:    matches,
		MatchCount: len(matches),
	})
}

// parseForm accepts both multipart and URL-encoded report bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxReportBody)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// Contact handles POST /api/items/{id}/contact.
func (h *ItemsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var in lostfound.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Contact(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, requestResponse{
		Success: true,
		Message: "Your message has been sent to the reporter.",
		Request: req,
	})
}

// Claim handles POST /api/items/{id}/claim.
func (h *ItemsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var in lostfound.ClaimInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Claim(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, requestResponse{
		Success: true,
		Message: "Your claim has been submitted for review.",
		Request: req,
	})
}

package api

import (
	"net/http"

	"github.com/erazemk/lostfound/internal/lostfound"
	"github.com/erazemk/lostfound/internal/model"
	"github.com/erazemk/lostfound/internal/query"
)

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	Service *lostfound.Service
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Item    *model.Item `json:"item"`
}

// List handles GET /api/admin/items.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	l, err := query.ParseListing(r.URL.Query(), query.DefaultLimit)
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := h.Service.AdminList(r.Context(), GetSession(r.Context()), l)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, page)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context(), GetSession(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// UpdateStatus handles PUT /api/admin/items/{id}/status.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.UpdateStatus(r.Context(), GetSession(r.Context()), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, statusResponse{Success: true, Message: "Status updated", Item: item})
}

// Delete handles DELETE /api/admin/items/{id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Service.Delete(r.Context(), GetSession(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"success": true, "message": "Item deleted successfully"})
}

// Requests handles GET /api/admin/items/{id}/requests.
func (h *AdminHandler) Requests(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	reqs, err := h.Service.ItemRequests(r.Context(), GetSession(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, reqs)
}

package api

import (
	"database/sql"
	"net/http"
	"path"
	"path/filepath"

	"github.com/erazemk/lostfound/internal/lostfound"
)

// NewRouter creates the API router with all endpoints registered. Stored
// photos are served from uploadDir when it is set.
func NewRouter(db *sql.DB, jwtSecret string, svc *lostfound.Service, uploadDir string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Service: svc}
	adminHandler := &AdminHandler{Service: svc}

	authMW := AuthMiddleware(jwtSecret, db)
	admin := func(h http.HandlerFunc) http.Handler {
		return authMW(RequireAdmin(h))
	}

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", admin(authHandler.ChangePassword))
	mux.Handle("POST /api/auth/logout", admin(authHandler.Logout))

	// Items: public read, report and contact.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/feed", itemsHandler.Feed)
	mux.HandleFunc("GET /api/items/search", itemsHandler.Search)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("POST /api/items/lost", itemsHandler.ReportLost)
	mux.HandleFunc("POST /api/items/found", itemsHandler.ReportFound)
	mux.HandleFunc("POST /api/items/{id}/contact", itemsHandler.Contact)
	mux.HandleFunc("POST /api/items/{id}/claim", itemsHandler.Claim)

	// Admin dashboard.
	mux.Handle("GET /api/admin/items", admin(adminHandler.List))
	mux.Handle("GET /api/admin/stats", admin(adminHandler.Stats))
	mux.Handle("PUT /api/admin/items/{id}/status", admin(adminHandler.UpdateStatus))
	mux.Handle("DELETE /api/admin/items/{id}", admin(adminHandler.Delete))
	mux.Handle("GET /api/admin/items/{id}/requests", admin(adminHandler.Requests))

	if uploadDir != "" {
		mux.Handle("GET /uploads/{file}", uploadsHandler(uploadDir))
	}

	return mux
}

// uploadsHandler serves stored photos without directory listings.
func uploadsHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("file")
		if name == "" || name != path.Base(name) || name == ".." {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeFile(w, r, filepath.Join(dir, name))
	})
}

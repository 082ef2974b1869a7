package router

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"comanda/internal/handler"
	"comanda/internal/middleware"
)

// Handlers bundles the presentation-edge handlers the router wires up.
type Handlers struct {
	Auth    *handler.AuthHandler
	Tab     *handler.TabHandler
	Order   *handler.OrderHandler
	Table   *handler.TableHandler
	Catalog *handler.CatalogHandler
	Stats   *handler.StatsHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/login", methodOnly(http.MethodPost, h.Auth.Login))
	mux.HandleFunc("/api/logout", methodOnly(http.MethodPost, h.Auth.Logout))
	mux.HandleFunc("/api/session", methodOnly(http.MethodGet, h.Auth.Session))

	// Tab routes: collection plus per-tab actions
	tabRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case path == "/api/tabs" || path == "/api/tabs/":
			if r.Method == http.MethodPost {
				h.Tab.Create(w, r)
				return
			}
			h.Tab.List(w, r)
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/close"):
			h.Tab.Close(w, r)
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/email"):
			h.Tab.Email(w, r)
		case r.Method == http.MethodDelete:
			h.Tab.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/tabs", tabRouteHandler)
	mux.HandleFunc("/api/tabs/", tabRouteHandler)

	// Order routes: creation plus per-order actions
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case path == "/api/orders" || path == "/api/orders/":
			h.Order.Create(w, r)
		case r.Method == http.MethodPost && strings.HasSuffix(path, "/close"):
			h.Order.Close(w, r)
		case r.Method == http.MethodGet:
			h.Order.GetByID(w, r)
		case r.Method == http.MethodDelete:
			h.Order.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Table routes
	mux.HandleFunc("/api/tables", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Table.Create(w, r)
			return
		}
		h.Table.List(w, r)
	})

	// Product routes: collection plus per-product update/delete
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case path == "/api/products" || path == "/api/products/":
			if r.Method == http.MethodPost {
				h.Catalog.CreateProduct(w, r)
				return
			}
			h.Catalog.ListProducts(w, r)
		case r.Method == http.MethodPut:
			h.Catalog.UpdateProduct(w, r)
		case r.Method == http.MethodDelete:
			h.Catalog.DeleteProduct(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Category routes
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Catalog.CreateCategory(w, r)
			return
		}
		h.Catalog.ListCategories(w, r)
	})

	mux.HandleFunc("/api/statistics", methodOnly(http.MethodGet, h.Stats.Get))

	// Apply middleware in order: Recovery -> CorrelationID -> Logging -> CORS -> APIKeyAuth
	var routed http.Handler = mux
	routed = middleware.APIKeyAuth(apiKey, logger)(routed)
	routed = middleware.CORS(routed)
	routed = middleware.Logging(logger)(routed)
	routed = middleware.CorrelationID(routed)
	routed = middleware.Recovery(logger)(routed)

	return routed
}

// methodOnly rejects every method except the given one.
func methodOnly(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeGateway is an in-memory stand-in for the remote GraphQL backend.
// It keeps tab, order and catalogue state so mutations are visible on
// the next query, which is what the refetch-on-success flows rely on.
type fakeGateway struct {
	mu sync.Mutex

	tabs       []map[string]interface{}
	orders     []map[string]interface{}
	tables     []map[string]interface{}
	products   []map[string]interface{}
	categories []map[string]interface{}

	nextID int
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// SetupFakeGateway starts an HTTP server speaking just enough GraphQL
// for the client, seeded with a small restaurant fixture.
func SetupFakeGateway(t *testing.T) (*fakeGateway, *httptest.Server) {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gw := &fakeGateway{nextID: 100}

	gw.categories = []map[string]interface{}{
		{"id": "cat-salgados", "name": "Salgados", "icon": "🥟"},
		{"id": "cat-bebidas", "name": "Bebidas", "icon": ""},
	}
	gw.products = []map[string]interface{}{
		{"id": "prod-1", "name": "Coxinha", "price": 5.0, "code": "1",
			"needPreparation": true, "isPricePerKg": false, "productCategoryId": "cat-salgados"},
		{"id": "prod-2", "name": "Suco de Laranja", "price": 8.0, "code": "2",
			"needPreparation": false, "isPricePerKg": false, "productCategoryId": "cat-bebidas"},
	}
	gw.tables = []map[string]interface{}{
		{"id": "table-1", "code": 1, "status": "FREE"},
		{"id": "table-2", "code": 2, "status": "FREE"},
	}
	gw.orders = []map[string]interface{}{
		{
			"id": "order-1", "status": "CREATED", "customerTabId": "tab-1",
			"createdAt": now, "updatedAt": now,
			"products": []map[string]interface{}{
				{"productId": "prod-1", "quantity": 2.0, "totalPrice": 10.0,
					"product": map[string]interface{}{"id": "prod-1", "name": "Coxinha", "price": 5.0, "isPricePerKg": false}},
			},
		},
	}
	gw.tabs = []map[string]interface{}{
		{
			"id": "tab-1", "name": "Ana", "status": "OPEN",
			"createdAt": now, "updatedAt": now,
			"table":  map[string]interface{}{"id": "table-1", "code": 1},
			"orders": gw.orders,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(gw.handle))
	t.Cleanup(srv.Close)
	return gw, srv
}

func (g *fakeGateway) handle(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	data := map[string]interface{}{}
	switch {
	case strings.Contains(req.Query, "customerTabs"):
		data["customerTabs"] = g.tabsByStatus(req.Variables["status"])
	case strings.Contains(req.Query, "orderById"):
		data["orderById"] = g.orders[0]
	case strings.Contains(req.Query, "orders"):
		data["orders"] = g.orders
	case strings.Contains(req.Query, "productCategories") && strings.Contains(req.Query, "query"):
		data["productCategories"] = g.categories
	case strings.Contains(req.Query, "query GetProducts"):
		data["products"] = g.products
	case strings.Contains(req.Query, "query GetTables"):
		data["tables"] = g.tables
	case strings.Contains(req.Query, "createCustomerTab"):
		data["createCustomerTab"] = g.createTab(req.Variables)
	case strings.Contains(req.Query, "closeCustomerTab"):
		data["closeCustomerTab"] = g.closeTab(req.Variables)
	case strings.Contains(req.Query, "deleteCustomerTab"):
		data["deleteCustomerTab"] = true
	case strings.Contains(req.Query, "sendCustomerTabEmail"):
		data["sendCustomerTabEmail"] = true
	case strings.Contains(req.Query, "createOrder"):
		data["createOrder"] = g.createOrder(req.Variables)
	case strings.Contains(req.Query, "closeOrder"):
		data["closeOrder"] = true
	case strings.Contains(req.Query, "deleteOrder"):
		data["deleteOrder"] = true
	case strings.Contains(req.Query, "createProductCategory"):
		category := map[string]interface{}{
			"id":   g.id("cat"),
			"name": req.Variables["name"],
			"icon": req.Variables["icon"],
		}
		g.categories = append(g.categories, category)
		data["createProductCategory"] = category
	case strings.Contains(req.Query, "createProduct"):
		product := map[string]interface{}{
			"id":                g.id("prod"),
			"name":              req.Variables["name"],
			"price":             req.Variables["price"],
			"productCategoryId": req.Variables["productCategoryId"],
			"isPricePerKg":      req.Variables["isPricePerKg"],
		}
		g.products = append(g.products, product)
		data["createProduct"] = product
	case strings.Contains(req.Query, "updateProduct"):
		data["updateProduct"] = true
	case strings.Contains(req.Query, "deleteProduct"):
		data["deleteProduct"] = true
	case strings.Contains(req.Query, "createTable"):
		table := map[string]interface{}{"id": g.id("table"), "code": len(g.tables) + 1, "status": "FREE"}
		g.tables = append(g.tables, table)
		data["createTable"] = table
	case strings.Contains(req.Query, "authenticateWithGoogle"):
		data["authenticateWithGoogle"] = map[string]interface{}{
			"jwtToken": "jwt-test-token",
			"email":    "gerente@example.com",
			"role":     "MANAGER",
		}
	default:
		http.Error(w, "unhandled query", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func (g *fakeGateway) tabsByStatus(status interface{}) []map[string]interface{} {
	if status == nil {
		return g.tabs
	}
	want, _ := status.(string)
	out := make([]map[string]interface{}, 0, len(g.tabs))
	for _, tab := range g.tabs {
		if tab["status"] == want {
			out = append(out, tab)
		}
	}
	return out
}

func (g *fakeGateway) createTab(vars map[string]interface{}) map[string]interface{} {
	input, _ := vars["input"].(map[string]interface{})
	name, _ := input["name"].(string)
	now := time.Now().UTC()
	tab := map[string]interface{}{
		"id": g.id("tab"), "name": name, "status": "OPEN",
		"createdAt": now, "updatedAt": now,
		"table":  map[string]interface{}{"id": input["tableId"], "code": 2},
		"orders": []map[string]interface{}{},
	}
	g.tabs = append(g.tabs, tab)
	return tab
}

func (g *fakeGateway) closeTab(vars map[string]interface{}) bool {
	command, _ := vars["command"].(map[string]interface{})
	id := command["customerTabId"]
	for _, tab := range g.tabs {
		if tab["id"] == id {
			tab["status"] = "CLOSED"
			return true
		}
	}
	return false
}

func (g *fakeGateway) createOrder(vars map[string]interface{}) map[string]interface{} {
	now := time.Now().UTC()
	order := map[string]interface{}{
		"id": g.id("order"), "status": "CREATED", "customerTabId": vars["customerTabId"],
		"createdAt": now, "updatedAt": now,
		"products": []map[string]interface{}{},
	}
	g.orders = append(g.orders, order)
	return order
}

func (g *fakeGateway) id(prefix string) string {
	g.nextID++
	return fmt.Sprintf("%s-%d", prefix, g.nextID)
}

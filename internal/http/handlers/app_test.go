package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"ajir/internal/http/handlers"
	"ajir/internal/repos"
)

// newTestApp builds the real route table against an in-memory database,
// without the rate limiters that would get in the way of repeated calls.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	deps := handlers.NewDeps(db, nil)

	app := fiber.New()
	app.Post("/signup", deps.AuthHandler.Signup)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/admin-login", deps.AuthHandler.AdminLogin)
	app.Post("/admin/add-product", deps.AdminHandler.AddProduct)
	app.Put("/admin/update-product/:id", deps.AdminHandler.UpdateProduct)
	app.Delete("/admin/delete-product/:id", deps.AdminHandler.DeleteProduct)
	app.Get("/products", deps.ProductHandler.List)
	app.Get("/products/category/:category", deps.ProductHandler.ByCategory)
	app.Get("/products/:id", deps.ProductHandler.Get)
	app.Post("/order", deps.OrderHandler.Place)
	app.Get("/orders/:userId", deps.OrderHandler.History)
	app.Post("/payment/complete", deps.PaymentHandler.Complete)
	app.Get("/wishlist/:userId", deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)
	app.Delete("/wishlist/:userId/:productId", deps.WishlistHandler.Remove)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, raw
}

func addProduct(t *testing.T, app *fiber.App, category string) string {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/admin/add-product", map[string]any{
		"category":    category,
		"rentalPlace": "Salmiya",
		"quantity":    4,
		"price":       15.0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add product: %d %s", resp.StatusCode, raw)
	}
	var out struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Product.ID == "" {
		t.Fatalf("no product id in %s", raw)
	}
	return out.Product.ID
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestProductCRUDRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	id := addProduct(t, app, "camera")

	resp, raw := doJSON(t, app, "GET", "/products/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: %d %s", resp.StatusCode, raw)
	}
	var p struct {
		Category    string  `json:"category"`
		RentalPlace string  `json:"rentalPlace"`
		Price       float64 `json:"price"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatal(err)
	}
	if p.Category != "camera" || p.RentalPlace != "Salmiya" || p.Price != 15.0 {
		t.Fatalf("bad product: %s", raw)
	}

	resp, raw = doJSON(t, app, "PUT", "/admin/update-product/"+id, map[string]any{"price": 20.0})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %d %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), `"price":20`) {
		t.Fatalf("price not merged: %s", raw)
	}
	if !strings.Contains(string(raw), `"category":"camera"`) {
		t.Fatalf("partial update dropped fields: %s", raw)
	}

	resp, _ = doJSON(t, app, "DELETE", "/admin/delete-product/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "GET", "/products/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: want 404, got %d", resp.StatusCode)
	}
}

func TestAddProductValidatesRequiredFields(t *testing.T) {
	app, _ := newTestApp(t)

	for _, body := range []map[string]any{
		{"rentalPlace": "Salmiya", "quantity": 1, "price": 5.0},  // no category
		{"category": "camera", "quantity": 1, "price": 5.0},      // no rentalPlace
		{"category": "camera", "rentalPlace": "x", "price": 5.0}, // no quantity
		{"category": "camera", "rentalPlace": "x", "quantity": 1}, // no price
	} {
		resp, _ := doJSON(t, app, "POST", "/admin/add-product", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %v: want 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestDeleteMissingProductIsNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, "DELETE", "/admin/delete-product/missing", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d %s", resp.StatusCode, raw)
	}
}

func TestUpdateMissingProductIsNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "PUT", "/admin/update-product/missing", map[string]any{"price": 9.0})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestListProductsAndByCategory(t *testing.T) {
	app, _ := newTestApp(t)

	addProduct(t, app, "camera")
	addProduct(t, app, "drone")

	resp, raw := doJSON(t, app, "GET", "/products", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: %d", resp.StatusCode)
	}
	var all []json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 products, got %d", len(all))
	}

	resp, raw = doJSON(t, app, "GET", "/products/category/drone", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("by category: %d", resp.StatusCode)
	}
	var drones []json.RawMessage
	if err := json.Unmarshal(raw, &drones); err != nil {
		t.Fatal(err)
	}
	if len(drones) != 1 {
		t.Fatalf("want 1 drone, got %d", len(drones))
	}
}

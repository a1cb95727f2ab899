package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MikeMC777/mercado-granja/internal/cart"
	"github.com/MikeMC777/mercado-granja/internal/favourite"
	"github.com/MikeMC777/mercado-granja/internal/product"
)

func seedProducts(t *testing.T, f *fixture) {
	t.Helper()
	for _, body := range []string{
		`{"product_name":"Tomatoes","description":"1kg","price":4.5,"image_url":"t.jpg","seller_id":1}`,
		`{"product_name":"Eggs","price":"3","seller_id":1}`,
		`{"product_name":"Honey","price":"7.25","seller_id":1}`,
	} {
		if w := do(t, f.router(), http.MethodPost, "/products", body); w.Code != http.StatusOK {
			t.Fatalf("seed status=%d body=%s", w.Code, w.Body.String())
		}
	}
}

func TestProducts_CreateAndList(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)

	w := do(t, f.router(), http.MethodGet, "/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var got []product.Product
	decode(t, w, &got)
	if len(got) != 3 {
		t.Fatalf("len=%d, expected 3", len(got))
	}
	if got[0].Price != "4.50" || got[1].Price != "3.00" {
		t.Fatalf("prices not normalised: %q %q", got[0].Price, got[1].Price)
	}
}

func TestProducts_CreateMissingPrice(t *testing.T) {
	f := newFixture()
	w := do(t, f.router(), http.MethodPost, "/products", `{"product_name":"Eggs","seller_id":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (expected 400)", w.Code)
	}
	if len(f.products.items) != 0 {
		t.Fatalf("no product should be stored")
	}
}

func TestProducts_ListFailure(t *testing.T) {
	f := newFixture()
	f.products.fail = true
	w := do(t, f.router(), http.MethodGet, "/products", "")
	if w.Code != http.StatusInternalServerError || errorOf(t, w) != "Failed to fetch products" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestProducts_GetByID(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)
	r := f.router()

	if w := do(t, r, http.MethodGet, "/products/2", ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/products/99", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/products/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (expected 400)", w.Code)
	}
}

func TestCart_AddNThenList(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)
	r := f.router()

	for pid := 1; pid <= 3; pid++ {
		body := fmt.Sprintf(`{"userId":7,"productId":%d,"quantity":%d}`, pid, pid*2)
		if w := do(t, r, http.MethodPost, "/cart", body); w.Code != http.StatusOK {
			t.Fatalf("add status=%d body=%s", w.Code, w.Body.String())
		}
	}
	do(t, r, http.MethodPost, "/cart", `{"userId":8,"productId":1,"quantity":1}`)

	w := do(t, r, http.MethodGet, "/cart/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var lines []cart.Line
	decode(t, w, &lines)
	if len(lines) != 3 {
		t.Fatalf("len=%d, expected 3", len(lines))
	}
	if lines[2].ProductName != "Honey" || lines[2].Price != "7.25" || lines[2].Quantity != 6 {
		t.Fatalf("unexpected joined row: %+v", lines[2])
	}
}

func TestCart_DeleteByCartID(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)
	r := f.router()
	do(t, r, http.MethodPost, "/cart", `{"userId":7,"productId":1,"quantity":1}`)
	do(t, r, http.MethodPost, "/cart", `{"userId":7,"productId":2,"quantity":1}`)

	if w := do(t, r, http.MethodDelete, "/cart/999", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/cart/1", ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d (expected 200)", w.Code)
	}

	var lines []cart.Line
	decode(t, do(t, r, http.MethodGet, "/cart/7", ""), &lines)
	if len(lines) != 1 || lines[0].CartID != 2 {
		t.Fatalf("cart row 1 should be gone: %+v", lines)
	}
}

func TestCart_DeleteByBody(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)
	r := f.router()
	do(t, r, http.MethodPost, "/cart", `{"userId":7,"productId":1,"quantity":1}`)

	if w := do(t, r, http.MethodDelete, "/cart", `{"userId":7,"productId":2}`); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404)", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/cart", `{"userId":7,"productId":1}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d (expected 200)", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/cart", `{"userId":7}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d (expected 400)", w.Code)
	}
}

func TestCart_ClearForUser(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)
	r := f.router()
	do(t, r, http.MethodPost, "/cart", `{"userId":7,"productId":1,"quantity":1}`)
	do(t, r, http.MethodPost, "/cart", `{"userId":7,"productId":2,"quantity":1}`)
	do(t, r, http.MethodPost, "/cart", `{"userId":8,"productId":2,"quantity":1}`)

	w := do(t, r, http.MethodDelete, "/users/7/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body struct {
		Deleted int `json:"deleted"`
	}
	decode(t, w, &body)
	if body.Deleted != 2 {
		t.Fatalf("deleted=%d, expected 2", body.Deleted)
	}
	if w := do(t, r, http.MethodDelete, "/users/7/cart", ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d (expected 404 on empty cart)", w.Code)
	}
	var other []cart.Line
	decode(t, do(t, r, http.MethodGet, "/cart/8", ""), &other)
	if len(other) != 1 {
		t.Fatalf("other user's cart must be untouched: %+v", other)
	}
}

func TestFavourites_AddListRemove(t *testing.T) {
	f := newFixture()
	seedProducts(t, f)
	r := f.router()

	if w := do(t, r, http.MethodPost, "/favourites", `{"userId":7,"productId":1}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var lines []favourite.Line
	decode(t, do(t, r, http.MethodGet, "/favourites/7", ""), &lines)
	if len(lines) != 1 || lines[0].ImageURL != "t.jpg" {
		t.Fatalf("unexpected favourites: %+v", lines)
	}

	if w := do(t, r, http.MethodDelete, "/favourites", `{"userId":7,"productId":1}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/favourites", `{"userId":7,"productId":1}`); w.Code != http.StatusOK {
		t.Fatalf("removing a missing favourite answers 200, got %d", w.Code)
	}
	decode(t, do(t, r, http.MethodGet, "/favourites/7", ""), &lines)
	if len(lines) != 0 {
		t.Fatalf("favourites should be empty: %+v", lines)
	}
}

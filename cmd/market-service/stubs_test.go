package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/mercado-granja/internal/address"
	"github.com/MikeMC777/mercado-granja/internal/cart"
	"github.com/MikeMC777/mercado-granja/internal/favourite"
	"github.com/MikeMC777/mercado-granja/internal/order"
	"github.com/MikeMC777/mercado-granja/internal/product"
	"github.com/MikeMC777/mercado-granja/internal/seller"
	"github.com/MikeMC777/mercado-granja/internal/user"
)

//
// ---------- IN-MEMORY REPOSITORIES ----------
//

var errDB = errors.New("db down")

type memUsers struct {
	mu     sync.Mutex
	byMail map[string]*user.User
	fail   bool
}

func (m *memUsers) Create(ctx context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errDB
	}
	if _, ok := m.byMail[u.Email]; ok {
		return user.ErrAlreadyExist
	}
	u.ID = int64(len(m.byMail) + 1)
	u.CreatedAt = time.Now().UTC()
	cp := *u
	m.byMail[u.Email] = &cp
	return nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errDB
	}
	u, ok := m.byMail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memSellers struct {
	byMail map[string]*seller.Seller
}

func (m *memSellers) Create(ctx context.Context, s *seller.Seller) error {
	if _, ok := m.byMail[s.Email]; ok {
		return seller.ErrAlreadyExist
	}
	s.ID = int64(len(m.byMail) + 1)
	cp := *s
	m.byMail[s.Email] = &cp
	return nil
}

func (m *memSellers) GetByEmail(ctx context.Context, email string) (*seller.Seller, error) {
	s, ok := m.byMail[email]
	if !ok {
		return nil, seller.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

type memProducts struct {
	items []product.Product
	fail  bool
}

func (m *memProducts) Create(ctx context.Context, p *product.Product) error {
	if m.fail {
		return errDB
	}
	p.ID = int64(len(m.items) + 1)
	m.items = append(m.items, *p)
	return nil
}

func (m *memProducts) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	for _, p := range m.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, product.ErrNotFound
}

func (m *memProducts) List(ctx context.Context) ([]product.Product, error) {
	if m.fail {
		return nil, errDB
	}
	return append([]product.Product{}, m.items...), nil
}

type memCart struct {
	products *memProducts
	items    []cart.Item
	nextID   int64
}

func (m *memCart) Add(ctx context.Context, it *cart.Item) error {
	m.nextID++
	it.ID = m.nextID
	m.items = append(m.items, *it)
	return nil
}

func (m *memCart) ListByUser(ctx context.Context, userID int64) ([]cart.Line, error) {
	out := []cart.Line{}
	for _, it := range m.items {
		if it.UserID != userID {
			continue
		}
		p, err := m.products.GetByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		out = append(out, cart.Line{CartID: it.ID, ProductID: p.ID, ProductName: p.Name, Price: p.Price, Quantity: it.Quantity})
	}
	return out, nil
}

func (m *memCart) remove(keep func(cart.Item) bool) int64 {
	var kept []cart.Item
	var n int64
	for _, it := range m.items {
		if keep(it) {
			kept = append(kept, it)
		} else {
			n++
		}
	}
	m.items = kept
	return n
}

func (m *memCart) DeleteByID(ctx context.Context, cartID int64) (bool, error) {
	return m.remove(func(it cart.Item) bool { return it.ID != cartID }) > 0, nil
}

func (m *memCart) DeleteByUserProduct(ctx context.Context, userID, productID int64) (int64, error) {
	return m.remove(func(it cart.Item) bool { return it.UserID != userID || it.ProductID != productID }), nil
}

func (m *memCart) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return m.remove(func(it cart.Item) bool { return it.UserID != userID }), nil
}

type memFavourites struct {
	products *memProducts
	items    []favourite.Favourite
}

func (m *memFavourites) Add(ctx context.Context, f *favourite.Favourite) error {
	f.ID = int64(len(m.items) + 1)
	m.items = append(m.items, *f)
	return nil
}

func (m *memFavourites) ListByUser(ctx context.Context, userID int64) ([]favourite.Line, error) {
	out := []favourite.Line{}
	for _, f := range m.items {
		if f.UserID != userID {
			continue
		}
		p, err := m.products.GetByID(ctx, f.ProductID)
		if err != nil {
			continue
		}
		out = append(out, favourite.Line{FavouriteID: f.ID, ProductID: p.ID, ProductName: p.Name, Price: p.Price, ImageURL: p.ImageURL})
	}
	return out, nil
}

func (m *memFavourites) Remove(ctx context.Context, userID, productID int64) (int64, error) {
	var kept []favourite.Favourite
	var n int64
	for _, f := range m.items {
		if f.UserID == userID && f.ProductID == productID {
			n++
			continue
		}
		kept = append(kept, f)
	}
	m.items = kept
	return n, nil
}

type memAddresses struct {
	items []address.Address
	clock time.Time
}

func (m *memAddresses) Create(ctx context.Context, a *address.Address) error {
	if a.IsDefault {
		for i := range m.items {
			if m.items[i].UserID == a.UserID {
				m.items[i].IsDefault = false
			}
		}
	}
	m.clock = m.clock.Add(time.Minute)
	a.ID = int64(len(m.items) + 1)
	a.CreatedAt = m.clock
	m.items = append(m.items, *a)
	return nil
}

func (m *memAddresses) Primary(ctx context.Context, userID int64) (*address.Address, error) {
	var mine []address.Address
	for _, a := range m.items {
		if a.UserID == userID {
			mine = append(mine, a)
		}
	}
	if len(mine) == 0 {
		return nil, address.ErrNotFound
	}
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].IsDefault != mine[j].IsDefault {
			return mine[i].IsDefault
		}
		return mine[i].CreatedAt.Before(mine[j].CreatedAt)
	})
	return &mine[0], nil
}

func (m *memAddresses) GetForUser(ctx context.Context, addressID, userID int64) (*address.Address, error) {
	for _, a := range m.items {
		if a.ID == addressID && a.UserID == userID {
			cp := a
			return &cp, nil
		}
	}
	return nil, address.ErrNotFound
}

func (m *memAddresses) FindByFields(ctx context.Context, userID int64, f address.Fields) (*address.Address, error) {
	for _, a := range m.items {
		if a.UserID == userID && a.AddressLine == f.AddressLine && a.City == f.City && a.PostalCode == f.PostalCode && a.Country == f.Country {
			cp := a
			return &cp, nil
		}
	}
	return nil, address.ErrNotFound
}

// memOrders keeps committed state only; failDetail makes every detail insert fail.
type memOrders struct {
	orders     map[int64]order.Order
	details    map[int64][]order.Detail
	nextDetail int64
	failDetail bool
}

func (m *memOrders) Create(ctx context.Context, o *order.Order, items []order.Detail) error {
	id := int64(len(m.orders) + 1)
	staged := make([]order.Detail, len(items))
	for i, it := range items {
		if m.failDetail {
			return errDB
		}
		it.OrderID = id
		it.ID = m.nextDetail + int64(i) + 1
		staged[i] = it
	}
	m.nextDetail += int64(len(items))
	o.ID = id
	o.CreatedAt = time.Now().UTC()
	o.Items = staged
	stored := *o
	stored.Items = nil
	m.orders[id] = stored
	m.details[id] = staged
	return nil
}

func (m *memOrders) AddDetail(ctx context.Context, d *order.Detail) error {
	if m.failDetail {
		return errDB
	}
	m.nextDetail++
	d.ID = m.nextDetail
	m.details[d.OrderID] = append(m.details[d.OrderID], *d)
	return nil
}

func (m *memOrders) GetByID(ctx context.Context, id int64) (*order.Order, []order.Detail, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil, order.ErrNotFound
	}
	return &o, append([]order.Detail{}, m.details[id]...), nil
}

func (m *memOrders) ListByUser(ctx context.Context, userID int64) ([]order.Order, error) {
	out := []order.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

//
// ---------- HARNESS ----------
//

type fixture struct {
	users      *memUsers
	sellers    *memSellers
	products   *memProducts
	cart       *memCart
	favourites *memFavourites
	addresses  *memAddresses
	orders     *memOrders
	db         fakePinger
}

func newFixture() *fixture {
	products := &memProducts{}
	return &fixture{
		users:      &memUsers{byMail: map[string]*user.User{}},
		sellers:    &memSellers{byMail: map[string]*seller.Seller{}},
		products:   products,
		cart:       &memCart{products: products},
		favourites: &memFavourites{products: products},
		addresses:  &memAddresses{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		orders:     &memOrders{orders: map[int64]order.Order{}, details: map[int64][]order.Detail{}},
	}
}

func (f *fixture) router() *gin.Engine {
	return newRouter(zerolog.Nop(), f.db, repos{
		users:      f.users,
		sellers:    f.sellers,
		products:   f.products,
		cart:       f.cart,
		favourites: f.favourites,
		addresses:  f.addresses,
		orders:     f.orders,
	}, bcrypt.MinCost)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	return body.Error
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}

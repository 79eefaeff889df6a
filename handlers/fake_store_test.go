package handlers

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/models"
	"marketplace_backend/store"
	"marketplace_backend/utils"
)

// fakeStore is an in-memory Store used to exercise handlers without a
// database. It mirrors the relational implementation's semantics: computed
// totals, conditional stock decrement, one seller per account.
type fakeStore struct {
	mu           sync.Mutex
	accounts     map[string]*models.Account // keyed by phone number
	sellers      map[uint]*models.Seller
	products     map[uint]*models.Product
	transactions []models.Transaction
	categories   []models.Category
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*models.Account),
		sellers:  make(map[uint]*models.Seller),
		products: make(map[uint]*models.Product),
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateAccount(ctx context.Context, acc *models.Account, asSeller bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.accounts[acc.PhoneNumber]; ok {
		return store.ErrAccountExists
	}
	if asSeller {
		seller := &models.Seller{ID: f.id(), Location: acc.Address}
		f.sellers[seller.ID] = seller
		acc.SellerID = &seller.ID
	}
	acc.ID = f.id()
	stored := *acc
	f.accounts[acc.PhoneNumber] = &stored
	return nil
}

func (f *fakeStore) AccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	acc, ok := f.accounts[phone]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *acc
	return &copied, nil
}

func (f *fakeStore) AccountByID(ctx context.Context, id uint) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, acc := range f.accounts {
		if acc.ID == id {
			copied := *acc
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	accounts := []models.Account{}
	for _, acc := range f.accounts {
		accounts = append(accounts, *acc)
	}
	return accounts, nil
}

func (f *fakeStore) CreateSeller(ctx context.Context, location, accountPhone string) (*models.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	acc, ok := f.accounts[accountPhone]
	if !ok {
		return nil, store.ErrNotFound
	}
	if acc.SellerID != nil {
		return nil, store.ErrSellerExists
	}
	seller := &models.Seller{ID: f.id(), Location: location}
	f.sellers[seller.ID] = seller
	acc.SellerID = &seller.ID
	copied := *seller
	return &copied, nil
}

func (f *fakeStore) ListSellers(ctx context.Context) ([]models.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sellers := []models.Seller{}
	for _, s := range f.sellers {
		sellers = append(sellers, *s)
	}
	return sellers, nil
}

func (f *fakeStore) SellerByID(ctx context.Context, id uint) (*models.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seller, ok := f.sellers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *seller
	return &copied, nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.sellers[p.SellerID]; !ok {
		return store.ErrNotFound
	}
	p.ID = f.id()
	stored := *p
	f.products[p.ID] = &stored
	return nil
}

func (f *fakeStore) ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	products := []models.Product{}
	for _, p := range f.products {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Query != "" && !strings.Contains(p.Name, filter.Query) {
			continue
		}
		products = append(products, *p)
	}
	return products, int64(len(products)), nil
}

func (f *fakeStore) ProductsBySeller(ctx context.Context, sellerID uint) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.sellers[sellerID]; !ok {
		return nil, store.ErrNotFound
	}
	products := []models.Product{}
	for _, p := range f.products {
		if p.SellerID == sellerID {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (f *fakeStore) CreateTransaction(ctx context.Context, accountPhone string, sellerID, productID uint, qty int) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	acc, ok := f.accounts[accountPhone]
	if !ok {
		return nil, store.ErrNotFound
	}
	product, ok := f.products[productID]
	if !ok || product.SellerID != sellerID {
		return nil, store.ErrNotFound
	}
	if product.Qty < qty {
		return nil, store.ErrInsufficientStock
	}
	product.Qty -= qty

	trans := models.Transaction{
		ID:        f.id(),
		AccountID: acc.ID,
		SellerID:  sellerID,
		ProductID: productID,
		Qty:       qty,
		Total:     product.Price * float64(qty),
		Status:    models.StatusOrdered,
	}
	f.transactions = append(f.transactions, trans)
	return &trans, nil
}

func (f *fakeStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]models.Transaction{}, f.transactions...), nil
}

func (f *fakeStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]models.Category{}, f.categories...), nil
}

// newTestApp wires the handlers onto a fiber app the same way main does.
func newTestApp(s store.Store) *fiber.App {
	app := fiber.New()

	authHandler := NewAuthHandler(s)
	sellerHandler := NewSellerHandler(s)
	productHandler := NewProductHandler(s)
	transactionHandler := NewTransactionHandler(s)
	categoryHandler := NewCategoryHandler(s)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/accounts", authHandler.GetAccounts)
	api.Get("/me", utils.AuthMiddleware, authHandler.Me)
	api.Post("/add_seller", sellerHandler.AddSeller)
	api.Get("/sellers", sellerHandler.GetSellers)
	api.Get("/sellers/:id", sellerHandler.GetSeller)
	api.Get("/sellers/:id/products", sellerHandler.GetSellerProducts)
	api.Get("/products", productHandler.GetAllProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/transactions", transactionHandler.CreateTransaction)
	api.Get("/transactions", transactionHandler.GetTransactions)

	return app
}

package store

import (
	"context"
	"errors"

	"marketplace_backend/models"
)

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAccountExists means the phone number is already registered.
	ErrAccountExists = errors.New("account already exists")
	// ErrSellerExists means the account already has a seller identity.
	ErrSellerExists = errors.New("account already has a seller")
	// ErrInsufficientStock means the product cannot cover the requested qty.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows ListProducts results.
type ProductFilter struct {
	Type  string // exact category/type match
	Query string // substring match on name
	Page  int
	Limit int
}

// Store is the data-access surface the handlers depend on. Handlers never
// touch the DB handle directly, so tests can swap in an in-memory fake.
type Store interface {
	CreateAccount(ctx context.Context, acc *models.Account, asSeller bool) error
	AccountByPhone(ctx context.Context, phone string) (*models.Account, error)
	AccountByID(ctx context.Context, id uint) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)

	CreateSeller(ctx context.Context, location, accountPhone string) (*models.Seller, error)
	ListSellers(ctx context.Context) ([]models.Seller, error)
	SellerByID(ctx context.Context, id uint) (*models.Seller, error)

	CreateProduct(ctx context.Context, p *models.Product) error
	ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, int64, error)
	ProductsBySeller(ctx context.Context, sellerID uint) ([]models.Product, error)

	CreateTransaction(ctx context.Context, accountPhone string, sellerID, productID uint, qty int) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
}

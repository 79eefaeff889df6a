package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace_backend/models"
)

// Gorm implements Store on top of a relational database.
type Gorm struct {
	db  *gorm.DB
	log *slog.Logger
}

var _ Store = (*Gorm)(nil)

func Open(dsn string, log *slog.Logger) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	return &Gorm{db: db, log: log}, nil
}

func NewGorm(db *gorm.DB, log *slog.Logger) *Gorm {
	return &Gorm{db: db, log: log}
}

// DB exposes the underlying handle for migrations and seeding.
func (s *Gorm) DB() *gorm.DB {
	return s.db
}

// fail logs and wraps unexpected errors. Sentinel errors pass through
// untouched so handlers can map them to status codes.
func (s *Gorm) fail(op string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAccountExists),
		errors.Is(err, ErrSellerExists),
		errors.Is(err, ErrInsufficientStock):
		return err
	}
	s.log.Error("store operation failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func (s *Gorm) CreateAccount(ctx context.Context, acc *models.Account, asSeller bool) error {
	const op = "store.CreateAccount"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).
			Where("phone_number = ?", acc.PhoneNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAccountExists
		}

		if asSeller {
			seller := models.Seller{Location: acc.Address}
			if err := tx.Create(&seller).Error; err != nil {
				return err
			}
			acc.SellerID = &seller.ID
		}

		return tx.Create(acc).Error
	})
	if err != nil {
		return s.fail(op, err)
	}
	return nil
}

func (s *Gorm) AccountByPhone(ctx context.Context, phone string) (*models.Account, error) {
	const op = "store.AccountByPhone"

	var acc models.Account
	err := s.db.WithContext(ctx).Where("phone_number = ?", phone).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.fail(op, err)
	}
	return &acc, nil
}

func (s *Gorm) AccountByID(ctx context.Context, id uint) (*models.Account, error) {
	const op = "store.AccountByID"

	var acc models.Account
	err := s.db.WithContext(ctx).First(&acc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.fail(op, err)
	}
	return &acc, nil
}

func (s *Gorm) ListAccounts(ctx context.Context) ([]models.Account, error) {
	const op = "store.ListAccounts"

	var accounts []models.Account
	if err := s.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, s.fail(op, err)
	}
	return accounts, nil
}

func (s *Gorm) CreateSeller(ctx context.Context, location, accountPhone string) (*models.Seller, error) {
	const op = "store.CreateSeller"

	var seller models.Seller
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acc models.Account
		if err := tx.Where("phone_number = ?", accountPhone).First(&acc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if acc.SellerID != nil {
			return ErrSellerExists
		}

		seller = models.Seller{Location: location}
		if err := tx.Create(&seller).Error; err != nil {
			return err
		}

		// Conditional update: the unique index on accounts.seller_id plus
		// the IS NULL guard keep concurrent requests from linking twice.
		res := tx.Model(&models.Account{}).
			Where("id = ? AND seller_id IS NULL", acc.ID).
			Update("seller_id", seller.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSellerExists
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(op, err)
	}
	return &seller, nil
}

func (s *Gorm) ListSellers(ctx context.Context) ([]models.Seller, error) {
	const op = "store.ListSellers"

	var sellers []models.Seller
	if err := s.db.WithContext(ctx).Order("id").Find(&sellers).Error; err != nil {
		return nil, s.fail(op, err)
	}
	return sellers, nil
}

func (s *Gorm) SellerByID(ctx context.Context, id uint) (*models.Seller, error) {
	const op = "store.SellerByID"

	var seller models.Seller
	err := s.db.WithContext(ctx).First(&seller, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.fail(op, err)
	}
	return &seller, nil
}

func (s *Gorm) CreateProduct(ctx context.Context, p *models.Product) error {
	const op = "store.CreateProduct"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Seller{}).
			Where("id = ?", p.SellerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Create(p).Error
	})
	if err != nil {
		return s.fail(op, err)
	}
	return nil
}

func (s *Gorm) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, int64, error) {
	const op = "store.ListProducts"

	filtered := func(db *gorm.DB) *gorm.DB {
		if f.Type != "" {
			db = db.Where("type = ?", f.Type)
		}
		if f.Query != "" {
			db = db.Where("name LIKE ?", "%"+f.Query+"%")
		}
		return db
	}

	var total int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).
		Scopes(filtered).
		Count(&total).Error
	if err != nil {
		return nil, 0, s.fail(op, err)
	}

	query := s.db.WithContext(ctx).Scopes(filtered)
	if f.Limit > 0 {
		query = query.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}

	var products []models.Product
	err = query.Preload("Seller").Order("created_at desc").Find(&products).Error
	if err != nil {
		return nil, 0, s.fail(op, err)
	}
	return products, total, nil
}

func (s *Gorm) ProductsBySeller(ctx context.Context, sellerID uint) ([]models.Product, error) {
	const op = "store.ProductsBySeller"

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Seller{}).
		Where("id = ?", sellerID).
		Count(&count).Error; err != nil {
		return nil, s.fail(op, err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	products := []models.Product{}
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, s.fail(op, err)
	}
	return products, nil
}

func (s *Gorm) CreateTransaction(ctx context.Context, accountPhone string, sellerID, productID uint, qty int) (*models.Transaction, error) {
	const op = "store.CreateTransaction"

	var trans models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acc models.Account
		if err := tx.Where("phone_number = ?", accountPhone).First(&acc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var product models.Product
		err := tx.Where("id = ? AND seller_id = ?", productID, sellerID).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		// Decrement only when enough stock remains; zero rows affected
		// means another order got there first or qty was too large.
		res := tx.Model(&models.Product{}).
			Where("id = ? AND qty >= ?", productID, qty).
			UpdateColumn("qty", gorm.Expr("qty - ?", qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		trans = models.Transaction{
			AccountID: acc.ID,
			SellerID:  sellerID,
			ProductID: productID,
			Qty:       qty,
			Total:     product.Price * float64(qty),
			Status:    models.StatusOrdered,
		}
		return tx.Create(&trans).Error
	})
	if err != nil {
		return nil, s.fail(op, err)
	}
	return &trans, nil
}

func (s *Gorm) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	const op = "store.ListTransactions"

	var transactions []models.Transaction
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&transactions).Error
	if err != nil {
		return nil, s.fail(op, err)
	}
	return transactions, nil
}

func (s *Gorm) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "store.ListCategories"

	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, s.fail(op, err)
	}
	return categories, nil
}

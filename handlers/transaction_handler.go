package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/store"
)

type TransactionHandler struct {
	Store store.Store
}

func NewTransactionHandler(s store.Store) *TransactionHandler {
	return &TransactionHandler{Store: s}
}

// CreateTransactionRequest defines the payload for placing an order
type CreateTransactionRequest struct {
	AccountRef string `json:"account_ref"` // phone number of the buying account
	SellerID   uint   `json:"seller_id"`
	ProductID  uint   `json:"product_id"`
	Qty        int    `json:"qty"`
}

// CreateTransaction - POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.AccountRef == "" || req.SellerID == 0 || req.ProductID == 0 || req.Qty <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "account_ref, seller_id, product_id and a positive qty are required"})
	}

	// Total is computed from the product's current price; the payload never
	// supplies it.
	trans, err := h.Store.CreateTransaction(c.UserContext(), req.AccountRef, req.SellerID, req.ProductID, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Referenced account, seller or product not found"})
		case errors.Is(err, store.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Transaction created", "data": trans})
}

// GetTransactions - GET /api/transactions
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.Store.ListTransactions(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch transactions"})
	}

	return c.JSON(fiber.Map{"data": transactions})
}

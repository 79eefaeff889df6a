package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/store"
)

type SellerHandler struct {
	Store store.Store
}

func NewSellerHandler(s store.Store) *SellerHandler {
	return &SellerHandler{Store: s}
}

// AddSellerRequest defines the payload for registering a seller identity
type AddSellerRequest struct {
	Location   string `json:"location"`
	AccountRef string `json:"account_ref"` // phone number of the owning account
}

// AddSeller - POST /api/add_seller
func (h *SellerHandler) AddSeller(c *fiber.Ctx) error {
	var req AddSellerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.Location == "" || req.AccountRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Location and account_ref are required"})
	}

	seller, err := h.Store.CreateSeller(c.UserContext(), req.Location, req.AccountRef)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		case errors.Is(err, store.ErrSellerExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Account already has a seller identity"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create seller"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Seller created", "data": seller})
}

// GetSellers - GET /api/sellers
func (h *SellerHandler) GetSellers(c *fiber.Ctx) error {
	sellers, err := h.Store.ListSellers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch sellers"})
	}

	return c.JSON(fiber.Map{"data": sellers})
}

// GetSeller - GET /api/sellers/:id
func (h *SellerHandler) GetSeller(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	seller, err := h.Store.SellerByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seller not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch seller"})
	}

	return c.JSON(fiber.Map{"data": seller})
}

// GetSellerProducts - GET /api/sellers/:id/products
func (h *SellerHandler) GetSellerProducts(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	products, err := h.Store.ProductsBySeller(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seller not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	// An existing seller with nothing listed gets an empty list, not a 404.
	return c.JSON(fiber.Map{"data": products})
}

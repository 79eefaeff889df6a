package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/models"
	"marketplace_backend/store"
)

type ProductHandler struct {
	Store store.Store
}

func NewProductHandler(s store.Store) *ProductHandler {
	return &ProductHandler{Store: s}
}

// CreateProductRequest
type CreateProductRequest struct {
	SellerID uint    `json:"seller_id"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Type     string  `json:"type"`
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.SellerID == 0 || req.Qty <= 0 || req.Price <= 0 || req.Name == "" || req.Image == "" || req.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All product fields are required"})
	}

	product := models.Product{
		SellerID: req.SellerID,
		Qty:      req.Qty,
		Price:    req.Price,
		Name:     req.Name,
		Image:    req.Image,
		Type:     req.Type,
	}

	if err := h.Store.CreateProduct(c.UserContext(), &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Seller not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// GetAllProducts - GET /api/products
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := store.ProductFilter{
		Type:  c.Query("type"),
		Query: c.Query("q"),
		Page:  page,
		Limit: limit,
	}

	products, total, err := h.Store.ListProducts(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{
		"data": products,
		"meta": models.NewPaginationMeta(page, limit, total),
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"marketplace_backend/store"
)

type CategoryHandler struct {
	Store store.Store
}

func NewCategoryHandler(s store.Store) *CategoryHandler {
	return &CategoryHandler{Store: s}
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Store.ListCategories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch categories"})
	}
	return c.JSON(fiber.Map{"data": categories})
}

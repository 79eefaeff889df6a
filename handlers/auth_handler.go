package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/models"
	"marketplace_backend/store"
	"marketplace_backend/utils"
)

type AuthHandler struct {
	Store store.Store
}

func NewAuthHandler(s store.Store) *AuthHandler {
	return &AuthHandler{Store: s}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Wishlist    string `json:"wishlist"`
	IsSeller    bool   `json:"is_seller"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Register - POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.PhoneNumber == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Phone number and password are required"})
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	account := models.Account{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Password:    hashedPassword,
		Wishlist:    req.Wishlist,
	}

	if err := h.Store.CreateAccount(c.UserContext(), &account, req.IsSeller); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Account already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not register account"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Account registered successfully", "data": account})
}

// Login - POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	account, err := h.Store.AccountByPhone(c.UserContext(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	// Verify password
	if !utils.CheckPasswordHash(req.Password, account.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(account.ID, 72*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"data":  account,
	})
}

// GetAccounts - GET /api/accounts
func (h *AuthHandler) GetAccounts(c *fiber.Ctx) error {
	accounts, err := h.Store.ListAccounts(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch accounts"})
	}

	return c.JSON(fiber.Map{"data": accounts})
}

// Me - GET /api/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	accountID, ok := c.Locals("account_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session"})
	}

	account, err := h.Store.AccountByID(c.UserContext(), accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch account"})
	}

	return c.JSON(fiber.Map{"data": account})
}

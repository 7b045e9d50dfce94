package dashboard

import (
	"time"

	"godown-backend/internal/middleware"
	"godown-backend/internal/pkg/hindi"
	"godown-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles dashboard handlers.
type Handlers struct {
	Service *Service

	// Now is the reference-date source; overridable in tests.
	Now func() time.Time
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Home GET /api/v1/dashboard/home — role flags and display name from the session.
func (h *Handlers) Home(c *fiber.Ctx) error {
	m, ok := middleware.GetUser(c).(map[string]interface{})
	if !ok {
		return response.Unauthorized(c, "Please log in again")
	}
	name, _ := m["name"].(string)
	if name == "" {
		name = "User"
	}
	isSeller, _ := m["is_seller"].(bool)
	isStockist, _ := m["is_stockist"].(bool)

	return response.Success(c, "Home", fiber.Map{
		"display_name":    name,
		"display_name_hi": hindi.Name(name),
		"is_seller":       isSeller,
		"is_stockist":     isStockist,
	}, nil)
}

// Seller GET /api/v1/dashboard/seller — purchases, payments and dues.
func (h *Handlers) Seller(c *fiber.Ctx) error {
	mobile := middleware.GetMobile(c)
	if mobile == "" {
		return response.Unauthorized(c, "Please log in again")
	}

	data, err := h.Service.Seller(c.Context(), mobile, h.now())
	if err != nil {
		if err == ErrUnknownSeller {
			return response.Unauthorized(c, "Please log in again")
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Seller dashboard", data, nil)
}

// Stockist GET /api/v1/dashboard/stockist — ledger rows plus accrued dues.
func (h *Handlers) Stockist(c *fiber.Ctx) error {
	mobile := middleware.GetMobile(c)
	if mobile == "" {
		return response.Unauthorized(c, "Please log in again")
	}

	data, err := h.Service.Stockist(c.Context(), mobile, h.now())
	if err != nil {
		if err == ErrUnknownStockist {
			return response.Unauthorized(c, "Please log in again")
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Stockist dashboard", data, nil)
}

// Company GET /api/v1/dashboard/company — admin finance roll-up.
func (h *Handlers) Company(c *fiber.Ctx) error {
	data, err := h.Service.Company(c.Context(), h.now())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Company dashboard", data, nil)
}

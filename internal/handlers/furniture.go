package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/mebel/internal/models"
	"github.com/example/mebel/internal/utils"
)

// FurnitureHandler manages the furniture catalog.
type FurnitureHandler struct {
	db *gorm.DB
}

// NewFurnitureHandler constructs a FurnitureHandler.
func NewFurnitureHandler(db *gorm.DB) *FurnitureHandler {
	return &FurnitureHandler{db: db}
}

type insertFurnitureRequest struct {
	FullName     string                     `json:"fullname" form:"fullname"`
	Description  string                     `json:"description" form:"description"`
	Price        float64                    `json:"price" form:"price"`
	Category     models.FurnitureCategory   `json:"category" form:"category"`
	Material     models.FurnitureMaterial   `json:"material" form:"material"`
	Manufacturer models.ManufacturerCountry `json:"manufacturer" form:"manufacturer"`
	ImageURL     string                     `json:"image_url" form:"image_url"`
}

// Insert persists a new catalog item.
func (h *FurnitureHandler) Insert(c *fiber.Ctx) error {
	var req insertFurnitureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.FullName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "fullname is required")
	}
	if !req.Category.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category")
	}
	if !req.Material.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid material")
	}
	if !req.Manufacturer.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "invalid manufacturer")
	}

	item := models.Furniture{
		FullName:     req.FullName,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Material:     req.Material,
		Manufacturer: req.Manufacturer,
		ImageURL:     req.ImageURL,
	}

	if err := h.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "furniture already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// List returns a paginated slice of the catalog, optionally filtered by
// category.
func (h *FurnitureHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Furniture{})
	if category := models.FurnitureCategory(c.Query("category")); category != "" {
		if !category.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category")
		}
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var items []models.Furniture
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("id").
		Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
			"total_pages":    pg.TotalPages(total),
		},
	})
}

// Get returns a single catalog item by ID.
func (h *FurnitureHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.Furniture
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "furniture not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// Delete removes a catalog item by ID.
func (h *FurnitureHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Furniture{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"fmt"
	"log"

	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/best-sellers", h.HandleBestSellers)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// RegisterAdminRoutes registers catalog management routes on the admin group.
func (h *ProductHandler) RegisterAdminRoutes(admin fiber.Router) {
	productRoutes := admin.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/:id/image", h.HandleUploadImage)
}

// HandleGetProducts lists the catalog, optionally filtered by ?brand= and ?tag=.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := models.ProductFilter{Brand: c.Query("brand"), Tag: c.Query("tag")}
	products, err := h.service.GetAllProducts(c.UserContext(), filter)
	if err != nil {
		return failWith(c, err, "retrieve products")
	}
	return respond(c, fiber.StatusOK, products)
}

// HandleBestSellers lists the best selling products, ?limit= defaults to 4.
func (h *ProductHandler) HandleBestSellers(c *fiber.Ctx) error {
	products, err := h.service.BestSellers(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return failWith(c, err, "retrieve best sellers")
	}
	return respond(c, fiber.StatusOK, products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return failWith(c, err, "retrieve product")
	}
	return respond(c, fiber.StatusOK, product)
}

// HandleCreateProduct adds a product to the catalog.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if ok, err := parseAndValidate(c, h.validate, &product); !ok {
		return err
	}
	product.ID = ""

	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		return failWith(c, err, "create product")
	}
	return respond(c, fiber.StatusCreated, product)
}

// HandleUpdateProduct replaces the fields of a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if ok, err := parseAndValidate(c, h.validate, &product); !ok {
		return err
	}
	product.ID = c.Params("id")

	if err := h.service.UpdateProduct(c.UserContext(), &product); err != nil {
		return failWith(c, err, "update product")
	}
	return respond(c, fiber.StatusOK, product)
}

// HandleDeleteProduct removes a product. Existing orders keep their snapshot.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return failWith(c, err, "delete product")
	}
	return respond(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", id),
	})
}

// HandleUploadImage stores the multipart "image" file and sets it as the product image.
func (h *ProductHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Multipart field 'image' is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded image: %v", err)
		return fail(c, fiber.StatusBadRequest, "Could not read uploaded image")
	}
	defer file.Close()

	product, err := h.service.SetProductImage(c.UserContext(), c.Params("id"), fileHeader.Filename, file)
	if err != nil {
		return failWith(c, err, "upload product image")
	}
	return respond(c, fiber.StatusOK, product)
}

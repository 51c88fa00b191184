package handlers

import (
	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the storefront contact form.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the public contact form.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// RegisterAdminRoutes registers the message inbox on the admin group.
func (h *ContactHandler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Get("/contact", h.HandleList)
}

// HandleSubmit stores a message from the contact form.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if ok, err := parseAndValidate(c, h.validate, &msg); !ok {
		return err
	}
	msg.ID = ""

	if err := h.service.Submit(c.UserContext(), &msg); err != nil {
		return failWith(c, err, "send message")
	}
	return respond(c, fiber.StatusCreated, msg)
}

// HandleList returns the received messages.
func (h *ContactHandler) HandleList(c *fiber.Ctx) error {
	msgs, err := h.service.List(c.UserContext())
	if err != nil {
		return failWith(c, err, "retrieve messages")
	}
	return respond(c, fiber.StatusOK, msgs)
}

package public

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/almursalaat/admin-api/services"
	"github.com/almursalaat/admin-api/utils/response"
	"github.com/almursalaat/admin-api/utils/validation"
)

// ApplicationHandler handles the public application form.
type ApplicationHandler struct {
	applications *services.ApplicationService
	notifier     *services.Notifier
	validator    *validation.Validator
}

// NewApplicationHandler creates a new public application handler
func NewApplicationHandler(applications *services.ApplicationService, notifier *services.Notifier, validator *validation.Validator) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		notifier:     notifier,
		validator:    validator,
	}
}

// SubmitApplication accepts a prospective student's application. This is the
// only unauthenticated write in the API, which is why it sits behind the rate
// limiter. The row is committed before any side effect fires; a duplicate
// email rejects the whole submission.
func (h *ApplicationHandler) SubmitApplication(c *fiber.Ctx) error {
	var input services.ApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(input); err != nil {
		return response.ValidationError(c, err)
	}

	app, err := h.applications.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to submit application")
	}

	h.notifier.ApplicationSubmitted(app)

	return response.Created(c, app)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rations-api/internal/application/dto"
	"github.com/jhoicas/rations-api/internal/application/usecase"
	"github.com/jhoicas/rations-api/internal/domain"
)

// RationHandler maneja las peticiones HTTP del registro de raciones.
type RationHandler struct {
	uc *usecase.RationUseCase
}

// NewRationHandler construye el handler.
func NewRationHandler(uc *usecase.RationUseCase) *RationHandler {
	return &RationHandler{uc: uc}
}

// List godoc
// @Summary      Listar raciones (más recientes primero)
// @Tags         rations
// @Produce      json
// @Success      200  {object}  dto.RationListResponse
// @Router       /api/rations [get]
func (h *RationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return alimentError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ración por ID
// @Tags         rations
// @Produce      json
// @Param        id   path  string  true  "ID de la ración"
// @Success      200  {object}  dto.RationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rations/{id} [get]
func (h *RationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return alimentError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrRationNotFound.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar ración
// @Tags         rations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRationRequest  true  "Datos de la ración"
// @Success      201   {object}  dto.RationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/rations [post]
func (h *RationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return alimentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar ración
// @Tags         rations
// @Produce      json
// @Param        id   path  string  true  "ID de la ración"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rations/{id} [delete]
func (h *RationHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return alimentError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrRationNotFound.Error()})
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

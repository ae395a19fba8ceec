package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rations-api/internal/application/dto"
	"github.com/jhoicas/rations-api/internal/application/usecase"
	"github.com/jhoicas/rations-api/internal/domain"
)

// AlimentHandler maneja las peticiones HTTP del navegador de alimentos.
type AlimentHandler struct {
	uc *usecase.AlimentUseCase
}

// NewAlimentHandler construye el handler.
func NewAlimentHandler(uc *usecase.AlimentUseCase) *AlimentHandler {
	return &AlimentHandler{uc: uc}
}

// List godoc
// @Summary      Listar alimentos (personalizados + catálogo)
// @Tags         aliments
// @Produce      json
// @Param        q     query  string  false  "Búsqueda por nombre (subcadena, sin mayúsculas)"
// @Param        type  query  string  false  "Filtrar por categoría"
// @Success      200   {object}  dto.AlimentListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aliments [get]
func (h *AlimentHandler) List(c *fiber.Ctx) error {
	if rawType := c.Query("type"); rawType != "" {
		out, err := h.uc.ListByType(rawType)
		if err != nil {
			return alimentError(c, err)
		}
		return c.JSON(out)
	}
	if q := c.Query("q"); q != "" {
		out, err := h.uc.Search(q)
		if err != nil {
			return alimentError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return alimentError(c, err)
	}
	return c.JSON(out)
}

// Count godoc
// @Summary      Total de alimentos (catálogo + personalizados)
// @Tags         aliments
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Router       /api/aliments/count [get]
func (h *AlimentHandler) Count(c *fiber.Ctx) error {
	out, err := h.uc.Count()
	if err != nil {
		return alimentError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener alimento personalizado por ID
// @Tags         aliments
// @Produce      json
// @Param        id   path  string  true  "ID del alimento"
// @Success      200  {object}  dto.CustomAlimentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aliments/{id} [get]
func (h *AlimentHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Get(id)
	if err != nil {
		return alimentError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alimento no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear alimento personalizado
// @Tags         custom-aliments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomAlimentRequest  true  "Datos del alimento"
// @Success      201   {object}  dto.CustomAlimentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/custom-aliments [post]
func (h *AlimentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomAlimentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return alimentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar alimento personalizado
// @Tags         custom-aliments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del alimento"
// @Param        body  body  dto.UpdateCustomAlimentRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.CustomAlimentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /api/custom-aliments/{id} [put]
func (h *AlimentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCustomAlimentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return alimentError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar alimento personalizado
// @Tags         custom-aliments
// @Produce      json
// @Param        id   path  string  true  "ID del alimento"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      507  {object}  dto.ErrorResponse
// @Router       /api/custom-aliments/{id} [delete]
func (h *AlimentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return alimentError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrCustomAlimentNotFound.Error()})
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}

// alimentError mapea los errores de dominio a estados HTTP. Los fallos son
// deterministas y se devuelven siempre al llamador: aquí no se reintenta nada.
func alimentError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrInvalidAlimentType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error(), Field: "type"})
	case errors.Is(err, domain.ErrCustomAlimentNotFound), errors.Is(err, domain.ErrRationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageFull):
		return c.Status(fiber.StatusInsufficientStorage).JSON(dto.ErrorResponse{Code: "STORAGE_FULL", Message: err.Error()})
	case errors.Is(err, domain.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
)

// CompanyHandler maneja consulta y aprobación de empresas.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Approve godoc
// @Summary      Aprobar empresa (solo superusuario)
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/approve [patch]
func (h *CompanyHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(ActorFromCtx(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(ActorFromCtx(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas (solo superusuario)
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(ActorFromCtx(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

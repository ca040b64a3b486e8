package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
)

// ProductionHandler maneja lotes de producción, consumos e items producidos.
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler de producción.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// CreateBatch godoc
// @Summary      Crear lote de producción
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "lote de producción"
// @Success      201   {object}  dto.BatchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *ProductionHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBatch(GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBatch godoc
// @Summary      Obtener lote de producción
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *ProductionHandler) GetBatch(c *fiber.Ctx) error {
	out, err := h.uc.GetBatch(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Consume godoc
// @Summary      Consumir material de un lote para el lote de producción
// @Tags         production
// @Accept       json
// @Param        id    path  string  true  "batch id"
// @Param        body  body  dto.ConsumeLotRequest  true  "consumo"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse  "existencias insuficientes"
// @Router       /api/batches/{id}/consume [post]
func (h *ProductionHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Consume(c.Context(), GetCompanyID(c), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ListConsumption godoc
// @Summary      Listar consumos del lote de producción
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {array}  dto.ConsumptionResponse
// @Router       /api/batches/{id}/consumptions [get]
func (h *ProductionHandler) ListConsumption(c *fiber.Ctx) error {
	out, err := h.uc.ListConsumption(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterItem godoc
// @Summary      Registrar unidad producida serializada
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "batch id"
// @Param        body  body  dto.RegisterItemRequest  true  "número de serie"
// @Success      201   {object}  dto.ItemResponse
// @Failure      409   {object}  dto.ErrorResponse  "serial duplicado"
// @Router       /api/batches/{id}/items [post]
func (h *ProductionHandler) RegisterItem(c *fiber.Ctx) error {
	var in dto.RegisterItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterItem(GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListItems godoc
// @Summary      Listar unidades producidas del lote de producción
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/batches/{id}/items [get]
func (h *ProductionHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

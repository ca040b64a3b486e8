package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
)

// InventoryHandler maneja recepción de lotes, traslados y existencias.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ReceiveLot godoc
// @Summary      Recibir lote de material
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveLotRequest  true  "lote"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/lots [post]
func (h *InventoryHandler) ReceiveLot(c *fiber.Ctx) error {
	var in dto.ReceiveLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ReceiveLot(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLots godoc
// @Summary      Listar lotes de la empresa
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.LotListResponse
// @Router       /api/inventory/lots [get]
func (h *InventoryHandler) ListLots(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListLots(GetCompanyID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Trasladar cantidad de un lote entre bodegas
// @Tags         inventory
// @Accept       json
// @Param        body  body  dto.TransferRequest  true  "traslado"
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse  "existencias insuficientes"
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Transfer(c.Context(), GetCompanyID(c), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// StockByWarehouse godoc
// @Summary      Existencias de una bodega
// @Tags         inventory
// @Produce      json
// @Param        id  path  string  true  "warehouse id"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/stock [get]
func (h *InventoryHandler) StockByWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.StockByWarehouse(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

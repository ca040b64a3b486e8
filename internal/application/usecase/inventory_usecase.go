package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// InventoryUseCase recepción de lotes, traslados entre bodegas y consulta de
// existencias. Las operaciones que tocan lote e inventario a la vez corren en
// transacción a través del InventoryTxRunner.
type InventoryUseCase struct {
	suppliers  repository.SupplierRepository
	materials  repository.MaterialRepository
	warehouses repository.WarehouseRepository
	lots       repository.LotRepository
	inventory  repository.InventoryRepository
	tx         InventoryTxRunner
}

// NewInventoryUseCase construye el caso de uso con los puertos de persistencia.
func NewInventoryUseCase(
	suppliers repository.SupplierRepository,
	materials repository.MaterialRepository,
	warehouses repository.WarehouseRepository,
	lots repository.LotRepository,
	inventory repository.InventoryRepository,
	tx InventoryTxRunner,
) *InventoryUseCase {
	return &InventoryUseCase{
		suppliers:  suppliers,
		materials:  materials,
		warehouses: warehouses,
		lots:       lots,
		inventory:  inventory,
		tx:         tx,
	}
}

// ReceiveLot registra la recepción de un lote de material: crea el lote y
// acredita su cantidad completa como existencia de la bodega indicada, todo o
// nada. Proveedor, material y bodega deben pertenecer a la empresa.
func (uc *InventoryUseCase) ReceiveLot(ctx context.Context, companyID string, in dto.ReceiveLotRequest) (*dto.LotResponse, error) {
	qty, err := parseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	material, err := uc.materials.GetByID(in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil || material.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.scopedWarehouse(companyID, in.WarehouseID); err != nil {
		return nil, err
	}

	lot := &entity.Lot{
		ID:                uuid.New().String(),
		SupplierID:        in.SupplierID,
		MaterialID:        in.MaterialID,
		QuantityReceived:  qty,
		QuantityRemaining: qty,
		ReceivedAt:        time.Now(),
		Expiration:        in.Expiration,
	}
	err = uc.tx.RunInventory(ctx, func(lots repository.LotRepository, inventory repository.InventoryRepository) error {
		if err := lots.Create(lot); err != nil {
			return err
		}
		return inventory.Add(in.WarehouseID, lot.ID, qty)
	})
	if err != nil {
		return nil, err
	}
	return toLotResponse(lot), nil
}

// Transfer traslada cantidad de un lote entre dos bodegas de la empresa.
// El descuento en origen y el abono en destino ocurren en transacción; si el
// origen no tiene suficiente, nada cambia y se devuelve ErrInsufficientStock.
func (uc *InventoryUseCase) Transfer(ctx context.Context, companyID string, in dto.TransferRequest) error {
	qty, err := parseQuantity(in.Quantity)
	if err != nil {
		return err
	}
	if in.FromWarehouseID == in.ToWarehouseID {
		return domain.ErrInvalidInput
	}
	if _, err := uc.scopedWarehouse(companyID, in.FromWarehouseID); err != nil {
		return err
	}
	if _, err := uc.scopedWarehouse(companyID, in.ToWarehouseID); err != nil {
		return err
	}
	return uc.tx.RunInventory(ctx, func(_ repository.LotRepository, inventory repository.InventoryRepository) error {
		if err := inventory.Remove(in.FromWarehouseID, in.LotID, qty); err != nil {
			return err
		}
		return inventory.Add(in.ToWarehouseID, in.LotID, qty)
	})
}

// StockByWarehouse lista las existencias de una bodega de la empresa.
func (uc *InventoryUseCase) StockByWarehouse(companyID, warehouseID string) (*dto.InventoryResponse, error) {
	if _, err := uc.scopedWarehouse(companyID, warehouseID); err != nil {
		return nil, err
	}
	lines, err := uc.inventory.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryResponse{WarehouseID: warehouseID, Lines: make([]dto.InventoryLineResponse, 0, len(lines))}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.InventoryLineResponse{
			WarehouseID: l.WarehouseID,
			LotID:       l.LotID,
			Quantity:    l.Quantity.String(),
		})
	}
	return out, nil
}

// ListLots lista los lotes de la empresa (vía sus proveedores) con paginación.
func (uc *InventoryUseCase) ListLots(companyID string, page dto.PageRequest) (*dto.LotListResponse, error) {
	page.DefaultPage()
	lots, err := uc.lots.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *toLotResponse(l))
	}
	return &dto.LotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *InventoryUseCase) scopedWarehouse(companyID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return warehouse, nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	return &dto.LotResponse{
		ID:                l.ID,
		SupplierID:        l.SupplierID,
		MaterialID:        l.MaterialID,
		QuantityReceived:  l.QuantityReceived.String(),
		QuantityRemaining: l.QuantityRemaining.String(),
		ReceivedAt:        l.ReceivedAt,
		Expiration:        l.Expiration,
	}
}

// parseQuantity convierte una cantidad decimal en texto y exige que sea
// estrictamente positiva.
func parseQuantity(s string) (decimal.Decimal, error) {
	qty, err := decimal.NewFromString(s)
	if err != nil || !qty.IsPositive() {
		return decimal.Decimal{}, domain.ErrInvalidInput
	}
	return qty, nil
}

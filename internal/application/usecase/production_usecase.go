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

// ProductionUseCase lotes de producción: alta, consumo de materiales y
// registro de unidades producidas serializadas.
type ProductionUseCase struct {
	batches    repository.BatchRepository
	orders     repository.OrderRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	items      repository.ItemRepository
	tx         ProductionTxRunner
}

// NewProductionUseCase construye el caso de uso con los puertos de persistencia.
func NewProductionUseCase(
	batches repository.BatchRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	items repository.ItemRepository,
	tx ProductionTxRunner,
) *ProductionUseCase {
	return &ProductionUseCase{
		batches:    batches,
		orders:     orders,
		products:   products,
		warehouses: warehouses,
		items:      items,
		tx:         tx,
	}
}

// CreateBatch crea un lote de producción para una orden. Bodega, producto y
// orden deben pertenecer a la empresa; la cantidad ordenada debe ser positiva.
func (uc *ProductionUseCase) CreateBatch(companyID string, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	qty, err := parseQuantity(in.OrderedQuantity)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orders.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	batch := &entity.ProductBatch{
		ID:               uuid.New().String(),
		WarehouseID:      in.WarehouseID,
		ProductID:        in.ProductID,
		OrderID:          in.OrderID,
		OrderedQuantity:  qty,
		ProducedQuantity: decimal.Zero,
	}
	if err := uc.batches.Create(batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// GetBatch obtiene un lote de producción de la empresa.
func (uc *ProductionUseCase) GetBatch(companyID, id string) (*dto.BatchResponse, error) {
	batch, err := uc.scopedBatch(companyID, id)
	if err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// ListBatchesByOrder lista los lotes de producción de una orden de la empresa.
func (uc *ProductionUseCase) ListBatchesByOrder(companyID, orderID string) ([]dto.BatchResponse, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	batches, err := uc.batches.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, *toBatchResponse(b))
	}
	return out, nil
}

// Consume descuenta material de un lote para el lote de producción: baja la
// cantidad restante del lote, descuenta la existencia de la bodega indicada y
// acumula el consumo, todo en una transacción. Si el lote o la bodega no
// alcanzan, nada cambia y se devuelve ErrInsufficientStock.
func (uc *ProductionUseCase) Consume(ctx context.Context, companyID, batchID string, in dto.ConsumeLotRequest) error {
	qty, err := parseQuantity(in.Quantity)
	if err != nil {
		return err
	}
	if _, err := uc.scopedBatch(companyID, batchID); err != nil {
		return err
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.tx.RunProduction(ctx, func(
		lots repository.LotRepository,
		inventory repository.InventoryRepository,
		batches repository.BatchRepository,
	) error {
		if err := lots.DecrementRemaining(in.LotID, qty); err != nil {
			return err
		}
		if err := inventory.Remove(in.WarehouseID, in.LotID, qty); err != nil {
			return err
		}
		return batches.AddConsumption(batchID, in.LotID, qty)
	})
}

// ListConsumption lista los consumos acumulados del lote de producción.
func (uc *ProductionUseCase) ListConsumption(companyID, batchID string) ([]dto.ConsumptionResponse, error) {
	if _, err := uc.scopedBatch(companyID, batchID); err != nil {
		return nil, err
	}
	consumptions, err := uc.batches.ListConsumption(batchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsumptionResponse, 0, len(consumptions))
	for _, c := range consumptions {
		out = append(out, dto.ConsumptionResponse{
			ProductBatchID: c.ProductBatchID,
			LotID:          c.LotID,
			Quantity:       c.Quantity.String(),
		})
	}
	return out, nil
}

// RegisterItem registra una unidad producida serializada a nombre del
// operador y suma uno a la cantidad producida del lote de producción.
// Un serial repetido devuelve ErrDuplicate.
func (uc *ProductionUseCase) RegisterItem(companyID, operatorID, batchID string, in dto.RegisterItemRequest) (*dto.ItemResponse, error) {
	if in.SerialNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.scopedBatch(companyID, batchID); err != nil {
		return nil, err
	}
	item := &entity.Item{
		ID:             uuid.New().String(),
		SerialNumber:   in.SerialNumber,
		ProductBatchID: batchID,
		OperatorID:     operatorID,
		ProductionDate: time.Now(),
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	if err := uc.batches.IncrementProduced(batchID, decimal.NewFromInt(1)); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ListItems lista las unidades producidas del lote de producción.
func (uc *ProductionUseCase) ListItems(companyID, batchID string) ([]dto.ItemResponse, error) {
	if _, err := uc.scopedBatch(companyID, batchID); err != nil {
		return nil, err
	}
	items, err := uc.items.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// scopedBatch resuelve un lote de producción y verifica, vía su bodega, que
// pertenezca a la empresa del actor.
func (uc *ProductionUseCase) scopedBatch(companyID, id string) (*entity.ProductBatch, error) {
	batch, err := uc.batches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouses.GetByID(batch.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

func toBatchResponse(b *entity.ProductBatch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:               b.ID,
		WarehouseID:      b.WarehouseID,
		ProductID:        b.ProductID,
		OrderID:          b.OrderID,
		OrderedQuantity:  b.OrderedQuantity.String(),
		ProducedQuantity: b.ProducedQuantity.String(),
	}
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:             i.ID,
		SerialNumber:   i.SerialNumber,
		ProductBatchID: i.ProductBatchID,
		OperatorID:     i.OperatorID,
		ProductionDate: i.ProductionDate,
	}
}

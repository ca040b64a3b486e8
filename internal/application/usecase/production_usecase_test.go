package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fabrica-pro/internal/application/dto"
	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

type productionFixture struct {
	uc        *ProductionUseCase
	inv       *InventoryUseCase
	lots      *fakeLotRepo
	inventory *fakeInventoryRepo
	batches   *fakeBatchRepo
	items     *fakeItemRepo
}

// buildProductionFixture arma una empresa con bodega, proveedor, material,
// producto, orden y un lote de 100 unidades ya acreditado en la bodega.
func buildProductionFixture(t *testing.T) *productionFixture {
	t.Helper()
	warehouses := newFakeWarehouseRepo()
	orders := newFakeOrderRepo()
	clients := newFakeClientRepo()
	lots := newFakeLotRepo()
	inventory := newFakeInventoryRepo()
	batches := newFakeBatchRepo()
	items := newFakeItemRepo()
	tx := &fakeTxRunner{lots: lots, inventory: inventory, batches: batches}

	_ = warehouses.Create(&entity.Warehouse{ID: "bod-prod", CompanyID: "empresa-a", Name: entity.WarehouseProduction})
	_ = clients.Create(&entity.Client{ID: "cli-1", CompanyID: "empresa-a", Name: "Cliente", Email: "c@x.test"})
	_ = orders.Create(&entity.Order{ID: "ord-1", CompanyID: "empresa-a", ClientID: "cli-1", Status: entity.OrderConfirmed, OrderDate: time.Now()})
	lots.companyOf["prov-1"] = "empresa-a"
	_ = lots.Create(&entity.Lot{
		ID:                "lote-1",
		SupplierID:        "prov-1",
		MaterialID:        "mat-1",
		QuantityReceived:  decimal.NewFromInt(100),
		QuantityRemaining: decimal.NewFromInt(100),
		ReceivedAt:        time.Now(),
	})
	_ = inventory.Add("bod-prod", "lote-1", decimal.NewFromInt(100))

	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", CompanyID: "empresa-a", Name: "Producto", Unit: "unidad"},
	}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"prov-1": {ID: "prov-1", CompanyID: "empresa-a", Name: "Proveedor", Email: "p@x.test"},
	}}
	materials := &fakeMaterialRepo{materials: map[string]*entity.Material{
		"mat-1": {ID: "mat-1", CompanyID: "empresa-a", Name: "Harina", Unit: "kg"},
	}}

	return &productionFixture{
		uc:        NewProductionUseCase(batches, orders, products, warehouses, items, tx),
		inv:       NewInventoryUseCase(suppliers, materials, warehouses, lots, inventory, tx),
		lots:      lots,
		inventory: inventory,
		batches:   batches,
		items:     items,
	}
}

func (f *productionFixture) createBatch(t *testing.T) string {
	t.Helper()
	out, err := f.uc.CreateBatch("empresa-a", dto.CreateBatchRequest{
		WarehouseID:     "bod-prod",
		ProductID:       "prod-1",
		OrderID:         "ord-1",
		OrderedQuantity: "50",
	})
	require.NoError(t, err)
	return out.ID
}

func TestProductionUseCase_CreateBatchNaceEnCero(t *testing.T) {
	f := buildProductionFixture(t)

	out, err := f.uc.CreateBatch("empresa-a", dto.CreateBatchRequest{
		WarehouseID:     "bod-prod",
		ProductID:       "prod-1",
		OrderID:         "ord-1",
		OrderedQuantity: "50",
	})
	require.NoError(t, err)
	assert.Equal(t, "50", out.OrderedQuantity)
	assert.Equal(t, "0", out.ProducedQuantity)
}

func TestProductionUseCase_CreateBatchRecursosDeOtraEmpresa(t *testing.T) {
	f := buildProductionFixture(t)

	_, err := f.uc.CreateBatch("empresa-b", dto.CreateBatchRequest{
		WarehouseID:     "bod-prod",
		ProductID:       "prod-1",
		OrderID:         "ord-1",
		OrderedQuantity: "50",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductionUseCase_ConsumoDescuentaLoteEInventario(t *testing.T) {
	f := buildProductionFixture(t)
	batchID := f.createBatch(t)

	err := f.uc.Consume(context.Background(), "empresa-a", batchID, dto.ConsumeLotRequest{
		WarehouseID: "bod-prod",
		LotID:       "lote-1",
		Quantity:    "30",
	})
	require.NoError(t, err)

	lot, _ := f.lots.GetByID("lote-1")
	assert.True(t, lot.QuantityRemaining.Equal(decimal.NewFromInt(70)))
	assert.True(t, f.inventory.stock["bod-prod/lote-1"].Equal(decimal.NewFromInt(70)))

	cons, err := f.uc.ListConsumption("empresa-a", batchID)
	require.NoError(t, err)
	require.Len(t, cons, 1)
	assert.Equal(t, "30", cons[0].Quantity)
}

func TestProductionUseCase_ConsumosSucesivosAcumulan(t *testing.T) {
	f := buildProductionFixture(t)
	batchID := f.createBatch(t)

	for i := 0; i < 2; i++ {
		err := f.uc.Consume(context.Background(), "empresa-a", batchID, dto.ConsumeLotRequest{
			WarehouseID: "bod-prod",
			LotID:       "lote-1",
			Quantity:    "10",
		})
		require.NoError(t, err)
	}
	cons, err := f.uc.ListConsumption("empresa-a", batchID)
	require.NoError(t, err)
	require.Len(t, cons, 1)
	assert.Equal(t, "20", cons[0].Quantity)
}

func TestProductionUseCase_ConsumoInsuficienteNoCambiaNada(t *testing.T) {
	f := buildProductionFixture(t)
	batchID := f.createBatch(t)

	err := f.uc.Consume(context.Background(), "empresa-a", batchID, dto.ConsumeLotRequest{
		WarehouseID: "bod-prod",
		LotID:       "lote-1",
		Quantity:    "150",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	lot, _ := f.lots.GetByID("lote-1")
	assert.True(t, lot.QuantityRemaining.Equal(decimal.NewFromInt(100)))
	assert.True(t, f.inventory.stock["bod-prod/lote-1"].Equal(decimal.NewFromInt(100)))
	assert.Empty(t, f.batches.consumptions)
}

func TestProductionUseCase_ConsumoCantidadInvalida(t *testing.T) {
	f := buildProductionFixture(t)
	batchID := f.createBatch(t)

	for _, qty := range []string{"0", "-5", "abc", ""} {
		err := f.uc.Consume(context.Background(), "empresa-a", batchID, dto.ConsumeLotRequest{
			WarehouseID: "bod-prod",
			LotID:       "lote-1",
			Quantity:    qty,
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %q", qty)
	}
}

func TestProductionUseCase_RegistrarItemIncrementaProducido(t *testing.T) {
	f := buildProductionFixture(t)
	batchID := f.createBatch(t)

	out, err := f.uc.RegisterItem("empresa-a", "op-1", batchID, dto.RegisterItemRequest{SerialNumber: "SN-001"})
	require.NoError(t, err)
	assert.Equal(t, "op-1", out.OperatorID)

	batch, err := f.uc.GetBatch("empresa-a", batchID)
	require.NoError(t, err)
	assert.Equal(t, "1", batch.ProducedQuantity)
}

func TestProductionUseCase_SerialDuplicado(t *testing.T) {
	f := buildProductionFixture(t)
	batchID := f.createBatch(t)

	_, err := f.uc.RegisterItem("empresa-a", "op-1", batchID, dto.RegisterItemRequest{SerialNumber: "SN-001"})
	require.NoError(t, err)
	_, err = f.uc.RegisterItem("empresa-a", "op-2", batchID, dto.RegisterItemRequest{SerialNumber: "SN-001"})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// El duplicado no avanza la cantidad producida.
	batch, err := f.uc.GetBatch("empresa-a", batchID)
	require.NoError(t, err)
	assert.Equal(t, "1", batch.ProducedQuantity)
}

func TestInventoryUseCase_RecibirLoteAcreditaBodega(t *testing.T) {
	f := buildProductionFixture(t)

	out, err := f.inv.ReceiveLot(context.Background(), "empresa-a", dto.ReceiveLotRequest{
		SupplierID:  "prov-1",
		MaterialID:  "mat-1",
		WarehouseID: "bod-prod",
		Quantity:    "40",
	})
	require.NoError(t, err)
	assert.Equal(t, "40", out.QuantityRemaining)
	assert.True(t, f.inventory.stock["bod-prod/"+out.ID].Equal(decimal.NewFromInt(40)))
}

func TestInventoryUseCase_TrasladoInsuficienteNoCambiaNada(t *testing.T) {
	f := buildProductionFixture(t)
	warehouses := newFakeWarehouseRepo()
	_ = warehouses.Create(&entity.Warehouse{ID: "bod-prod", CompanyID: "empresa-a", Name: entity.WarehouseProduction})
	_ = warehouses.Create(&entity.Warehouse{ID: "bod-main", CompanyID: "empresa-a", Name: entity.WarehouseMain})
	inv := NewInventoryUseCase(
		&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}},
		&fakeMaterialRepo{materials: map[string]*entity.Material{}},
		warehouses, f.lots, f.inventory,
		&fakeTxRunner{lots: f.lots, inventory: f.inventory, batches: f.batches},
	)

	err := inv.Transfer(context.Background(), "empresa-a", dto.TransferRequest{
		FromWarehouseID: "bod-prod",
		ToWarehouseID:   "bod-main",
		LotID:           "lote-1",
		Quantity:        "500",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.inventory.stock["bod-prod/lote-1"].Equal(decimal.NewFromInt(100)))
	assert.True(t, f.inventory.stock["bod-main/lote-1"].IsZero())
}

func TestInventoryUseCase_TrasladoMueveExistencias(t *testing.T) {
	f := buildProductionFixture(t)
	warehouses := newFakeWarehouseRepo()
	_ = warehouses.Create(&entity.Warehouse{ID: "bod-prod", CompanyID: "empresa-a", Name: entity.WarehouseProduction})
	_ = warehouses.Create(&entity.Warehouse{ID: "bod-main", CompanyID: "empresa-a", Name: entity.WarehouseMain})
	inv := NewInventoryUseCase(
		&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}},
		&fakeMaterialRepo{materials: map[string]*entity.Material{}},
		warehouses, f.lots, f.inventory,
		&fakeTxRunner{lots: f.lots, inventory: f.inventory, batches: f.batches},
	)

	err := inv.Transfer(context.Background(), "empresa-a", dto.TransferRequest{
		FromWarehouseID: "bod-prod",
		ToWarehouseID:   "bod-main",
		LotID:           "lote-1",
		Quantity:        "60",
	})
	require.NoError(t, err)
	assert.True(t, f.inventory.stock["bod-prod/lote-1"].Equal(decimal.NewFromInt(40)))
	assert.True(t, f.inventory.stock["bod-main/lote-1"].Equal(decimal.NewFromInt(60)))
}

func TestInventoryUseCase_TrasladoMismaBodega(t *testing.T) {
	f := buildProductionFixture(t)

	err := f.inv.Transfer(context.Background(), "empresa-a", dto.TransferRequest{
		FromWarehouseID: "bod-prod",
		ToWarehouseID:   "bod-prod",
		LotID:           "lote-1",
		Quantity:        "10",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

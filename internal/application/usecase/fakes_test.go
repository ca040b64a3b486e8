package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fabrica-pro/internal/domain"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

// Fakes en memoria para los tests del paquete. Implementan la misma semántica
// de unicidad y de stock que las implementaciones de postgres.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if s.CompanyID == companyID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	delete(r.suppliers, id)
	return nil
}

type fakeMaterialRepo struct {
	materials map[string]*entity.Material
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	cp := *m
	r.materials[m.ID] = &cp
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaterialRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.materials {
		if m.CompanyID == companyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	boms     map[string][]*entity.BOMLine
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ReplaceBOM(productID string, lines []*entity.BOMLine) error {
	if r.boms == nil {
		r.boms = map[string][]*entity.BOMLine{}
	}
	r.boms[productID] = lines
	return nil
}

func (r *fakeProductRepo) GetBOM(productID string) ([]*entity.BOMLine, error) {
	return r.boms[productID], nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	for _, e := range r.warehouses {
		if e.CompanyID == w.CompanyID && e.Name == w.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) ListByCompany(companyID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		if w.CompanyID == companyID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLotRepo struct {
	lots map[string]*entity.Lot
	// companyOf mapea supplier a empresa para ListByCompany.
	companyOf map[string]string
}

func newFakeLotRepo() *fakeLotRepo {
	return &fakeLotRepo{lots: map[string]*entity.Lot{}, companyOf: map[string]string{}}
}

func (r *fakeLotRepo) Create(l *entity.Lot) error {
	cp := *l
	r.lots[l.ID] = &cp
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) {
	l, ok := r.lots[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLotRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if r.companyOf[l.SupplierID] == companyID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLotRepo) DecrementRemaining(id string, quantity decimal.Decimal) error {
	l, ok := r.lots[id]
	if !ok {
		return domain.ErrNotFound
	}
	if l.QuantityRemaining.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	l.QuantityRemaining = l.QuantityRemaining.Sub(quantity)
	return nil
}

type fakeInventoryRepo struct {
	// clave warehouseID + "/" + lotID
	stock map[string]decimal.Decimal
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{stock: map[string]decimal.Decimal{}}
}

func invKey(warehouseID, lotID string) string { return warehouseID + "/" + lotID }

func (r *fakeInventoryRepo) Add(warehouseID, lotID string, quantity decimal.Decimal) error {
	k := invKey(warehouseID, lotID)
	r.stock[k] = r.stock[k].Add(quantity)
	return nil
}

func (r *fakeInventoryRepo) Remove(warehouseID, lotID string, quantity decimal.Decimal) error {
	k := invKey(warehouseID, lotID)
	if r.stock[k].LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	r.stock[k] = r.stock[k].Sub(quantity)
	return nil
}

func (r *fakeInventoryRepo) ListByWarehouse(warehouseID string) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for k, q := range r.stock {
		if len(k) > len(warehouseID) && k[:len(warehouseID)] == warehouseID && k[len(warehouseID)] == '/' {
			out = append(out, &entity.Inventory{
				WarehouseID: warehouseID,
				LotID:       k[len(warehouseID)+1:],
				Quantity:    q,
			})
		}
	}
	return out, nil
}

type fakeBatchRepo struct {
	batches      map[string]*entity.ProductBatch
	consumptions map[string]decimal.Decimal // productBatchID + "/" + lotID
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{
		batches:      map[string]*entity.ProductBatch{},
		consumptions: map[string]decimal.Decimal{},
	}
}

func (r *fakeBatchRepo) Create(b *entity.ProductBatch) error {
	cp := *b
	r.batches[b.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.ProductBatch, error) {
	b, ok := r.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBatchRepo) ListByOrder(orderID string) ([]*entity.ProductBatch, error) {
	var out []*entity.ProductBatch
	for _, b := range r.batches {
		if b.OrderID == orderID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) AddConsumption(productBatchID, lotID string, quantity decimal.Decimal) error {
	k := productBatchID + "/" + lotID
	r.consumptions[k] = r.consumptions[k].Add(quantity)
	return nil
}

func (r *fakeBatchRepo) ListConsumption(productBatchID string) ([]*entity.BatchConsumption, error) {
	var out []*entity.BatchConsumption
	prefix := productBatchID + "/"
	for k, q := range r.consumptions {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, &entity.BatchConsumption{
				ProductBatchID: productBatchID,
				LotID:          k[len(prefix):],
				Quantity:       q,
			})
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) IncrementProduced(id string, quantity decimal.Decimal) error {
	b, ok := r.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.ProducedQuantity = b.ProducedQuantity.Add(quantity)
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(i *entity.Item) error {
	for _, it := range r.items {
		if it.SerialNumber == i.SerialNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *i
	r.items[i.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetBySerial(serialNumber string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.SerialNumber == serialNumber {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) ListByBatch(productBatchID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.items {
		if it.ProductBatchID == productBatchID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta los fn con los fakes y simula rollback restaurando los
// estados mutables cuando fn falla.
type fakeTxRunner struct {
	lots      *fakeLotRepo
	inventory *fakeInventoryRepo
	batches   *fakeBatchRepo
}

func (t *fakeTxRunner) RunInventory(ctx context.Context, fn func(repository.LotRepository, repository.InventoryRepository) error) error {
	lotsSnap := snapshotLots(t.lots)
	invSnap := snapshotStock(t.inventory)
	if err := fn(t.lots, t.inventory); err != nil {
		t.lots.lots = lotsSnap
		t.inventory.stock = invSnap
		return err
	}
	return nil
}

func (t *fakeTxRunner) RunProduction(ctx context.Context, fn func(repository.LotRepository, repository.InventoryRepository, repository.BatchRepository) error) error {
	lotsSnap := snapshotLots(t.lots)
	invSnap := snapshotStock(t.inventory)
	consSnap := make(map[string]decimal.Decimal, len(t.batches.consumptions))
	for k, v := range t.batches.consumptions {
		consSnap[k] = v
	}
	if err := fn(t.lots, t.inventory, t.batches); err != nil {
		t.lots.lots = lotsSnap
		t.inventory.stock = invSnap
		t.batches.consumptions = consSnap
		return err
	}
	return nil
}

func snapshotLots(r *fakeLotRepo) map[string]*entity.Lot {
	out := make(map[string]*entity.Lot, len(r.lots))
	for k, v := range r.lots {
		cp := *v
		out[k] = &cp
	}
	return out
}

func snapshotStock(r *fakeInventoryRepo) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(r.stock))
	for k, v := range r.stock {
		out[k] = v
	}
	return out
}

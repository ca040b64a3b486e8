package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/fabrica-pro/internal/application/auth"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
	"github.com/tu-usuario/fabrica-pro/internal/domain/repository"
)

var _ auth.RegistrationTxRunner = (*TxRunner)(nil)
var _ usecase.InventoryTxRunner = (*TxRunner)(nil)
var _ usecase.ProductionTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el registro de empresa: empresa y usuario
// admin se crean juntos o no se crea ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	users repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventory inicia una transacción con repos de lotes y existencias
// (recepción de lote, traslado entre bodegas).
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	lots repository.LotRepository,
	inventory repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLotRepository(tx), NewInventoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduction inicia una transacción con repos de lotes, existencias y
// lotes de producción (consumo de materiales).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	lots repository.LotRepository,
	inventory repository.InventoryRepository,
	batches repository.BatchRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLotRepository(tx), NewInventoryRepository(tx), NewBatchRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-hu/internal/application/picking"
	"github.com/jhoicas/Inventario-hu/internal/application/reservation"
	"github.com/jhoicas/Inventario-hu/internal/domain/repository"
)

// Ensure TxRunner implements picking.TxRunner and reservation.TxRunner.
var _ picking.TxRunner = (*TxRunner)(nil)
var _ reservation.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con una unidad de trabajo atada a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(uow picking.UnitOfWork) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(newUnitOfWork(tx))
	})
}

// RunReservation inicia una transacción con los repos de HU y de reservas.
func (r *TxRunner) RunReservation(ctx context.Context, fn func(
	huRepo repository.HandlingUnitRepository,
	reservationRepo repository.HUReservationRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewHandlingUnitRepository(tx), NewHUReservationRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// unitOfWork repositorios atados a una misma tx (o a un savepoint dentro de ella).
type unitOfWork struct {
	tx pgx.Tx
}

func newUnitOfWork(tx pgx.Tx) *unitOfWork {
	return &unitOfWork{tx: tx}
}

func (u *unitOfWork) HandlingUnits() repository.HandlingUnitRepository {
	return NewHandlingUnitRepository(u.tx)
}

func (u *unitOfWork) SourceHUs() repository.SourceHURepository {
	return NewSourceHURepository(u.tx)
}

func (u *unitOfWork) TrxLines() repository.HUTrxLineRepository {
	return NewHUTrxLineRepository(u.tx)
}

func (u *unitOfWork) PickingCandidates() repository.PickingCandidateRepository {
	return NewPickingCandidateRepository(u.tx)
}

func (u *unitOfWork) PickingSlots() repository.PickingSlotRepository {
	return NewPickingSlotRepository(u.tx)
}

// Savepoint tx.Begin sobre una tx abierta crea un SAVEPOINT; Rollback vuelve a él y Commit lo libera.
func (u *unitOfWork) Savepoint(ctx context.Context, fn func(uow picking.UnitOfWork) error) error {
	sp, err := u.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	defer func() { _ = sp.Rollback(ctx) }()

	if err := fn(newUnitOfWork(sp)); err != nil {
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

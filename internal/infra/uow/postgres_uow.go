package uow

import (
	"context"
	"errors"
	"log/slog"

	"shareit/internal/infra/query"
	"shareit/internal/infra/readstore"
	"shareit/internal/infra/repository"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Lost updates on booking decisions are caught by the version check instead
// of a stricter isolation level, so nothing is retried here.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &readTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	// Lazy-initialized repositories
	userRepo        shared.UserRepository
	itemRepo        shared.ItemRepository
	itemRequestRepo shared.ItemRequestRepository
	bookingRepo     shared.BookingRepository
	commentRepo     shared.CommentRepository
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Items() shared.ItemRepository {
	if t.itemRepo == nil {
		t.itemRepo = repository.NewItemRepository(t.q, t.dbtx)
	}
	return t.itemRepo
}

func (t *pgTx) ItemRequests() shared.ItemRequestRepository {
	if t.itemRequestRepo == nil {
		t.itemRequestRepo = repository.NewItemRequestRepository(t.q, t.dbtx)
	}
	return t.itemRequestRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Comments() shared.CommentRepository {
	if t.commentRepo == nil {
		t.commentRepo = repository.NewCommentRepository(t.q, t.dbtx)
	}
	return t.commentRepo
}

type readTx struct {
	dbtx query.DBTX
	q    *query.Queries

	// Lazy-initialized readstores
	userStore        shared.UserReadStore
	itemStore        shared.ItemReadStore
	itemRequestStore shared.ItemRequestReadStore
	bookingStore     shared.BookingReadStore
	commentStore     shared.CommentReadStore
}

func (r *readTx) Users() shared.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.q, r.dbtx)
	}
	return r.userStore
}

func (r *readTx) Items() shared.ItemReadStore {
	if r.itemStore == nil {
		r.itemStore = readstore.NewItemReadStore(r.q, r.dbtx)
	}
	return r.itemStore
}

func (r *readTx) ItemRequests() shared.ItemRequestReadStore {
	if r.itemRequestStore == nil {
		r.itemRequestStore = readstore.NewItemRequestReadStore(r.q, r.dbtx)
	}
	return r.itemRequestStore
}

func (r *readTx) Bookings() shared.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *readTx) Comments() shared.CommentReadStore {
	if r.commentStore == nil {
		r.commentStore = readstore.NewCommentReadStore(r.q, r.dbtx)
	}
	return r.commentStore
}

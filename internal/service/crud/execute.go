package crud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/nebula/nebula-backend/internal/domain"
	"github.com/nebula/nebula-backend/pkg/ctxutil"
)

// UnitOfWorkFactory opens one UnitOfWork per logical operation.
type UnitOfWorkFactory interface {
	New() domain.UnitOfWork
}

// Execute runs fn against a fresh UnitOfWork and converts its outcome into a
// Result. The unit of work is always closed, which rolls back any transaction
// fn left open. Errors and panics never escape: they become failed results
// and are logged here.
func Execute[T any](
	ctx context.Context,
	uows UnitOfWorkFactory,
	log *slog.Logger,
	action string,
	fn func(uow domain.UnitOfWork) (T, error),
) (res Result[T]) {
	log = ctxutil.Logger(ctx, log)
	uow := uows.New()

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "panic recovered",
				slog.String("action", action),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			res = FromError[T](action, fmt.Errorf("panic: %v", r))
		}
		if err := uow.Close(ctx); err != nil {
			log.WarnContext(ctx, "close unit of work", slog.String("action", action), slog.String("error", err.Error()))
		}
	}()

	data, err := fn(uow)
	if err != nil {
		res = FromError[T](action, err)
		logFailure(ctx, log, action, res)
		return res
	}

	return OK(data)
}

func logFailure[T any](ctx context.Context, log *slog.Logger, action string, res Result[T]) {
	attrs := []any{
		slog.String("action", action),
		slog.String("code", string(res.ErrorCode)),
		slog.String("error", res.Err.Error()),
	}
	if res.IsCode(CodeInternal) {
		log.ErrorContext(ctx, "operation failed", attrs...)
		return
	}
	log.DebugContext(ctx, "operation rejected", attrs...)
}

// InTransaction runs fn inside an explicit transaction on uow. The
// transaction is committed (which saves staged changes) when fn succeeds and
// rolled back otherwise. fn's error stays matchable when the rollback fails.
func InTransaction[T any](ctx context.Context, uow domain.UnitOfWork, fn func() (T, error)) (T, error) {
	var zero T

	if err := uow.BeginTransaction(ctx); err != nil {
		return zero, err
	}

	v, err := fn()
	if err != nil {
		if rbErr := uow.RollbackTransaction(ctx); rbErr != nil {
			return zero, errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		return zero, err
	}

	if err := uow.CommitTransaction(ctx); err != nil {
		return zero, err
	}
	return v, nil
}

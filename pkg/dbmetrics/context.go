package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor кладёт транзакционный исполнитель в контекст.
// Репозитории, получившие такой контекст, прозрачно выполняют запросы
// внутри открытой транзакции.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, tx)
}

// GetExecutor возвращает исполнитель из контекста, если там открыта
// транзакция, иначе fallback (обычное соединение репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, открыта ли в контексте транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(TxExecutor)
	return ok
}

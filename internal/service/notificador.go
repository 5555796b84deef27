package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificadorStockBajo enqueues a low-stock alert for async delivery.
// Implemented by the worker dispatcher; enqueue failures are logged and
// never block the operation that triggered the alert.
type NotificadorStockBajo interface {
	EncolarAlertaStock(ctx context.Context, productoID uuid.UUID, nombre string, stockActual int) error
}

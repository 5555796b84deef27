package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Queue keys.
const (
	ColaAlertasStock = "jobs:alertas-stock"
	ColaAlertasDLQ   = "jobs:alertas-stock:dlq"
)

// AlertaStockJob is the payload pushed for every low-stock event.
type AlertaStockJob struct {
	ProductoID  string    `json:"producto_id"`
	Nombre      string    `json:"nombre"`
	StockActual int       `json:"stock_actual"`
	Intentos    int       `json:"intentos"`
	EncoladoEn  time.Time `json:"encolado_en"`
}

// Dispatcher pushes jobs onto the Redis queue. It implements
// service.NotificadorStockBajo.
type Dispatcher struct {
	redis *redis.Client
}

func NewDispatcher(redis *redis.Client) *Dispatcher {
	return &Dispatcher{redis: redis}
}

func (d *Dispatcher) EncolarAlertaStock(ctx context.Context, productoID uuid.UUID, nombre string, stockActual int) error {
	job := AlertaStockJob{
		ProductoID:  productoID.String(),
		Nombre:      nombre,
		StockActual: stockActual,
		EncoladoEn:  time.Now(),
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.redis.LPush(ctx, ColaAlertasStock, payload).Err()
}

package worker

import (
	"context"
	"fmt"

	"zapastock/internal/infra"
)

// EnviadorAlertas emails low-stock alerts to the store owner. SMTP is
// wrapped in a circuit breaker so a dead mail server does not burn retries
// across the whole queue.
type EnviadorAlertas struct {
	mailer       *infra.Mailer
	breaker      *infra.CircuitBreaker
	destinatario string
	limite       int
}

func NewEnviadorAlertas(mailer *infra.Mailer, breaker *infra.CircuitBreaker, destinatario string, limite int) *EnviadorAlertas {
	return &EnviadorAlertas{
		mailer:       mailer,
		breaker:      breaker,
		destinatario: destinatario,
		limite:       limite,
	}
}

func (e *EnviadorAlertas) Procesar(_ context.Context, job AlertaStockJob) error {
	if e.destinatario == "" {
		// Alertas por email deshabilitadas.
		return nil
	}

	asunto := fmt.Sprintf("Stock bajo: %s", job.Nombre)
	cuerpo := fmt.Sprintf(
		"El producto %q quedo con %d unidades (limite configurado: %d).\n\nProducto: %s\n",
		job.Nombre, job.StockActual, e.limite, job.ProductoID,
	)
	return e.breaker.Ejecutar(func() error {
		return e.mailer.Enviar(e.destinatario, asunto, cuerpo)
	})
}

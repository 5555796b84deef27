package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const maxIntentos = 3

// AlertaHandler processes one dequeued job.
type AlertaHandler interface {
	Procesar(ctx context.Context, job AlertaStockJob) error
}

// Pool runs N goroutines doing blocking pops on the alert queue. Failed jobs
// are retried up to maxIntentos and then parked in the DLQ.
type Pool struct {
	redis   *redis.Client
	handler AlertaHandler
	size    int
	log     zerolog.Logger
	wg      sync.WaitGroup
}

func NewPool(redis *redis.Client, handler AlertaHandler, size int, log zerolog.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{redis: redis, handler: handler, size: size, log: log}
}

// Start launches the workers. They stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	p.log.Info().Int("workers", p.size).Msg("pool de alertas iniciado")
}

// Wait blocks until every worker has exited.
func (p *Pool) Wait() { p.wg.Wait() }

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	log := p.log.With().Int("worker", id).Logger()

	for {
		res, err := p.redis.BRPop(ctx, 5*time.Second, ColaAlertasStock).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				log.Info().Msg("worker detenido")
				return
			}
			log.Error().Err(err).Msg("fallo el pop de la cola")
			time.Sleep(time.Second)
			continue
		}
		// res[0] es la clave, res[1] el payload
		p.procesar(ctx, log, []byte(res[1]))
	}
}

func (p *Pool) procesar(ctx context.Context, log zerolog.Logger, payload []byte) {
	var job AlertaStockJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("payload invalido, se descarta")
		return
	}

	if err := p.handler.Procesar(ctx, job); err != nil {
		job.Intentos++
		log.Warn().Err(err).
			Str("producto_id", job.ProductoID).
			Int("intentos", job.Intentos).
			Msg("fallo el procesamiento de la alerta")

		reencolado, merr := json.Marshal(job)
		if merr != nil {
			return
		}
		cola := ColaAlertasStock
		if job.Intentos >= maxIntentos {
			cola = ColaAlertasDLQ
			log.Error().Str("producto_id", job.ProductoID).Msg("alerta enviada a la DLQ")
		}
		if err := p.redis.LPush(ctx, cola, reencolado).Err(); err != nil {
			log.Error().Err(err).Msg("no se pudo reencolar la alerta")
		}
		return
	}

	log.Info().Str("producto_id", job.ProductoID).Msg("alerta de stock procesada")
}

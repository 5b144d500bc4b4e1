// Package confirmacao confirma automaticamente os agendamentos que
// seguem pendentes após o prazo de carência, reproduzindo no servidor a
// confirmação automática que o site disparava dois minutos depois da
// criação.
package confirmacao

import (
	"context"
	"log/slog"
	"time"
)

// Confirmador promove os agendamentos pendentes criados até o limite.
type Confirmador interface {
	ConfirmarPendentesAte(ctx context.Context, limite time.Time) (int, error)
}

// Config guarda os parâmetros do job.
type Config struct {
	// Delay é a carência entre a criação e a confirmação automática.
	Delay time.Duration
	// Interval é o intervalo entre varreduras.
	Interval time.Duration
}

// DefaultConfig devolve os parâmetros padrão: carência de dois minutos,
// varredura a cada trinta segundos.
func DefaultConfig() Config {
	return Config{
		Delay:    2 * time.Minute,
		Interval: 30 * time.Second,
	}
}

// Job varre os agendamentos pendentes periodicamente.
type Job struct {
	confirmador Confirmador
	logger      *slog.Logger
	config      Config
	agora       func() time.Time
}

// NewJob cria o Job de confirmação automática.
func NewJob(confirmador Confirmador, logger *slog.Logger, config Config) *Job {
	return &Job{
		confirmador: confirmador,
		logger:      logger,
		config:      config,
		agora:       time.Now,
	}
}

// Start roda a varredura periódica até o contexto ser cancelado.
func (j *Job) Start(ctx context.Context) {
	ticker := time.NewTicker(j.config.Interval)
	defer ticker.Stop()

	j.logger.Info("job de confirmação automática iniciado",
		slog.Duration("carencia", j.config.Delay),
		slog.Duration("intervalo", j.config.Interval),
	)

	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error("falha na varredura de confirmação automática",
			slog.String("error", err.Error()),
		)
	}

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("job de confirmação automática parado")
			return
		case <-ticker.C:
			if err := j.RunOnce(ctx); err != nil {
				j.logger.Error("falha na varredura de confirmação automática",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// RunOnce executa uma varredura: confirma os pendentes criados há mais
// tempo que a carência.
func (j *Job) RunOnce(ctx context.Context) error {
	limite := j.agora().Add(-j.config.Delay)

	confirmados, err := j.confirmador.ConfirmarPendentesAte(ctx, limite)
	if err != nil {
		return err
	}

	if confirmados > 0 {
		j.logger.Info("agendamentos confirmados automaticamente",
			slog.Int("confirmados", confirmados),
			slog.Time("limite", limite),
		)
	}

	return nil
}

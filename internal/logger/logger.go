// Package logger configura a saída de log estruturado da aplicação.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup cria um slog.Logger com saída JSON estruturada.
// Quando um writer é informado, a saída vai para ele.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault define o log JSON estruturado como logger global.
// Em produção espera-se os.Stdout como writer.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	logger := Setup(w)
	slog.SetDefault(logger)
}

package middleware

import (
	"net/http"
	"time"
)

// MedidorHTTP registra o status e a latência das respostas servidas.
type MedidorHTTP interface {
	HTTPStatus(statusCode int)
	HTTPLatency(duration time.Duration)
}

// NewMetricsMiddleware devolve o middleware que alimenta as métricas
// HTTP. Com medidor nulo, as requisições passam direto.
func NewMetricsMiddleware(medidor MedidorHTTP) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if medidor == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			medidor.HTTPStatus(rec.statusCode)
			medidor.HTTPLatency(time.Since(start))
		})
	}
}

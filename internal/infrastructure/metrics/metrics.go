// Package metrics expone contadores Prometheus de las operaciones sobre repositorios de ítems.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/inventario-core/internal/domain"
)

// Resultados posibles de una operación (label "result").
const (
	ResultOK              = "ok"
	ResultDuplicateKey    = "duplicate_key"
	ResultNotFound        = "not_found"
	ResultInvalidQuantity = "invalid_quantity"
	ResultError           = "error"
)

// Recorder registra operaciones por kind/op/result y el tamaño de cada repositorio.
type Recorder struct {
	operations *prometheus.CounterVec
	items      *prometheus.GaugeVec
}

// NewRecorder crea y registra las métricas en reg (usar prometheus.NewRegistry() en tests).
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventario",
			Name:      "operations_total",
			Help:      "Operaciones sobre repositorios de ítems por kind, operación y resultado.",
		}, []string{"kind", "op", "result"}),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "inventario",
			Name:      "items",
			Help:      "Ítems almacenados por kind.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{r.operations, r.items} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe cuenta una operación; err nil cuenta como ok.
func (r *Recorder) Observe(kind, op string, err error) {
	r.operations.WithLabelValues(kind, op, Result(err)).Inc()
}

// SetItems publica el tamaño actual del repositorio.
func (r *Recorder) SetItems(kind string, n int) {
	r.items.WithLabelValues(kind).Set(float64(n))
}

// Operations acceso al CounterVec (tests y dashboards).
func (r *Recorder) Operations() *prometheus.CounterVec { return r.operations }

// Items acceso al GaugeVec.
func (r *Recorder) Items() *prometheus.GaugeVec { return r.items }

// Result clasifica un error según la taxonomía del repositorio.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrDuplicateKey):
		return ResultDuplicateKey
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrInvalidQuantity):
		return ResultInvalidQuantity
	default:
		return ResultError
	}
}

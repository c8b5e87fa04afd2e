package stock

import "github.com/jhoicas/inventario-core/internal/domain/entity"

// Renderer colaborador de presentación: recibe ítems ya leídos y los formatea.
// El núcleo nunca formatea para pantalla.
type Renderer interface {
	Section(title string) error
	Render(item entity.View) error
}

// Observer recibe el resultado de cada operación (métricas). Lo implementa metrics.Recorder.
type Observer interface {
	Observe(kind, op string, err error)
	SetItems(kind string, n int)
}

type nopObserver struct{}

func (nopObserver) Observe(string, string, error) {}
func (nopObserver) SetItems(string, int)          {}

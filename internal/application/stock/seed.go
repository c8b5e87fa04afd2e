package stock

import "github.com/google/uuid"

// SeedOutcome resultado de insertar un ítem durante la carga inicial.
type SeedOutcome struct {
	Kind string
	ID   int
	Err  error
}

// OK indica si el ítem quedó insertado.
func (o SeedOutcome) OK() bool { return o.Err == nil }

// Failed cuenta los ítems que no se pudieron insertar.
func Failed(outcomes []SeedOutcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK() {
			n++
		}
	}
	return n
}

// Seed inserta el lote en modo best-effort: cada fallo se registra y la carga continúa.
func (s *Shelf[T]) Seed(items []T) []SeedOutcome {
	runID := uuid.New().String()
	log := s.log.WithField("seed_run", runID)

	outcomes := make([]SeedOutcome, 0, len(items))
	for _, item := range items {
		err := s.repo.Add(item)
		s.observe(OpSeed, err)
		if err != nil {
			log.Warn().Err(err).Int("id", item.ItemID()).Msg("error en carga inicial, se continúa")
		}
		outcomes = append(outcomes, SeedOutcome{Kind: s.kind, ID: item.ItemID(), Err: err})
	}
	log.Info().
		Int("total", len(items)).
		Int("failed", Failed(outcomes)).
		Msg("carga inicial terminada")
	return outcomes
}

package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/internal/infrastructure/metrics"
)

func TestResult(t *testing.T) {
	assert.Equal(t, metrics.ResultOK, metrics.Result(nil))
	assert.Equal(t, metrics.ResultDuplicateKey, metrics.Result(domain.DuplicateKey(domain.OpAdd, 1)))
	assert.Equal(t, metrics.ResultNotFound, metrics.Result(domain.NotFound(domain.OpRemove, 1)))
	assert.Equal(t, metrics.ResultInvalidQuantity, metrics.Result(domain.InvalidQuantity(domain.OpUpdateQuantity, 1, -1)))
	assert.Equal(t, metrics.ResultError, metrics.Result(errors.New("disco lleno")))
}

func TestRecorder_ObserveYSetItems(t *testing.T) {
	rec, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	rec.Observe("electronic", domain.OpAdd, nil)
	rec.Observe("electronic", domain.OpAdd, nil)
	rec.Observe("electronic", domain.OpAdd, domain.DuplicateKey(domain.OpAdd, 1))
	rec.SetItems("electronic", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Operations().WithLabelValues("electronic", "add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Operations().WithLabelValues("electronic", "add", "duplicate_key")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Items().WithLabelValues("electronic")))
}

func TestNewRecorder_RegistroDobleFalla(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/libcat/ilsrecord/v1/logger"
	"github.com/libcat/ilsrecord/v1/observability"
)

func gather(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func labels(metric *dto.Metric) map[string]string {
	out := make(map[string]string, len(metric.GetLabel()))
	for _, lp := range metric.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}
	return out
}

func TestObserveOperation(t *testing.T) {
	m := NewMetrics(Config{DisableServer: true, Namespace: "lib", ServiceName: "catalog"})
	require.Nil(t, m.Server)

	m.ObserveOperation(observability.OperationContext{
		Component:   "serializer",
		Operation:   "deserialize",
		Resource:    "patron",
		SubResource: "xml",
		Duration:    3 * time.Millisecond,
		Size:        1024,
	})
	m.ObserveOperation(observability.OperationContext{
		Component:   "serializer",
		Operation:   "deserialize",
		Resource:    "patron",
		SubResource: "xml",
		Duration:    time.Millisecond,
		Error:       errors.New("invalid xml payload"),
	})

	total := gather(t, m, "lib_ils_operations_total")
	require.NotNil(t, total)
	require.Len(t, total.GetMetric(), 2)
	byStatus := map[string]float64{}
	for _, metric := range total.GetMetric() {
		l := labels(metric)
		assert.Equal(t, "catalog", l["service"])
		assert.Equal(t, "serializer", l["component"])
		assert.Equal(t, "patron", l["resource"])
		assert.Equal(t, "xml", l["format"])
		byStatus[l["status"]] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"success": 1, "error": 1}, byStatus)

	duration := gather(t, m, "lib_ils_operation_duration_seconds")
	require.NotNil(t, duration)
	require.Len(t, duration.GetMetric(), 1)
	assert.Equal(t, uint64(2), duration.GetMetric()[0].GetHistogram().GetSampleCount())

	payload := gather(t, m, "lib_ils_payload_bytes")
	require.NotNil(t, payload)
	require.Len(t, payload.GetMetric(), 1)
	assert.Equal(t, uint64(1), payload.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.Equal(t, float64(1024), payload.GetMetric()[0].GetHistogram().GetSampleSum())
}

func TestCreateMetrics(t *testing.T) {
	m := NewMetrics(Config{DisableServer: true, ServiceName: "catalog"})

	m.CreateCounter("holds_placed_total", "Holds placed", []string{"library"}).WithLabelValues("main").Add(2)
	m.CreateGauge("patrons_blocked", "Blocked patrons", []string{"library"}).WithLabelValues("main").Set(5)
	m.CreateHistogram("renewals", "Items per renewal", []string{"library"}, []float64{1, 5, 10}).WithLabelValues("main").Observe(3)

	counter := gather(t, m, "holds_placed_total")
	require.NotNil(t, counter)
	assert.Equal(t, float64(2), counter.GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, "catalog", labels(counter.GetMetric()[0])["service"])

	gauge := gather(t, m, "patrons_blocked")
	require.NotNil(t, gauge)
	assert.Equal(t, float64(5), gauge.GetMetric()[0].GetGauge().GetValue())

	hist := gather(t, m, "renewals")
	require.NotNil(t, hist)
	assert.Equal(t, uint64(1), hist.GetMetric()[0].GetHistogram().GetSampleCount())

	assert.Panics(t, func() {
		m.CreateCounter("holds_placed_total", "Holds placed", []string{"library"})
	})
}

func TestServer(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "catalog"})
	require.NotNil(t, m.Server)
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)

	m.ObserveOperation(observability.OperationContext{
		Component:   "serializer",
		Operation:   "serialize",
		Resource:    "hold_request",
		SubResource: "json",
	})

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ils_operations_total{")
	assert.Contains(t, rec.Body.String(), `resource="hold_request"`)

	m = NewMetrics(Config{Address: "127.0.0.1:9100"})
	assert.Equal(t, "127.0.0.1:9100", m.Server.Addr)
}

func TestDefaultCollectors(t *testing.T) {
	m := NewMetrics(Config{DisableServer: true, EnableDefaultCollectors: true})
	assert.NotNil(t, gather(t, m, "go_goroutines"))
}

func TestFXModule(t *testing.T) {
	var collector MetricsCollector
	app := fxtest.New(t,
		fx.Supply(Config{DisableServer: true, ServiceName: "catalog"}),
		fx.Supply(logger.NewNop()),
		FXModule,
		fx.Populate(&collector),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, collector)
	collector.ObserveOperation(observability.OperationContext{Component: "serializer", Operation: "serialize"})
	assert.NotNil(t, gather(t, collector.(*Metrics), "ils_operations_total"))
}

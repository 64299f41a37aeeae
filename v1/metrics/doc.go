// Package metrics provides Prometheus metrics for ILS record processing.
//
// *Metrics implements observability.Observer. Passed to records or
// serializers, it counts every serialize and deserialize call by schema,
// format and outcome, and records durations and text payload sizes:
//
//	ils_operations_total{component, operation, resource, format, status}
//	ils_operation_duration_seconds{component, operation, resource, format}
//	ils_payload_bytes{operation, resource, format}
//
// Every metric lives in a dedicated registry and carries the constant label
// service="<Config.ServiceName>". Config.Namespace prefixes metric names.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics, MetricsCollector and an observer for the
//     "observers" value group
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "catalog",
//	})
//	go m.Server.ListenAndServe()
//
//	rec := record.Load(ils.PatronSchema, body, record.WithObserver(m))
//
// # Custom metrics
//
// CreateCounter, CreateHistogram and CreateGauge register further metrics in
// the same registry with the same namespace and service label.
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package metrics

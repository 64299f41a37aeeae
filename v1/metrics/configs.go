package metrics

// DefaultMetricsAddress is the listen address used when Config.Address is
// empty and the server is enabled.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration of the Prometheus metrics collector.
type Config struct {
	// Address is the listen address of the /metrics HTTP server, for example
	// ":9090" or "127.0.0.1:9100".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "address" key
	//   - Environment variable METRICS_ADDRESS
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// DisableServer turns off the HTTP server. Metrics are still collected in
	// the registry, which is useful for tests and for processes that expose
	// the registry through their own HTTP server.
	DisableServer bool `yaml:"disable_server" envconfig:"METRICS_DISABLE_SERVER"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name:
	//   Namespace: "catalog"
	//   → metric name becomes "catalog_ils_operations_total"
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

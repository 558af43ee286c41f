package config

import (
	"time"

	"github.com/vit0-9/http_playground/pkg/resolver"
)

// EnvPrefix is the prefix shared by every environment variable the server reads.
const EnvPrefix = "HTTPLAB_"

// Config represents the configuration of the playground server.
//
// Values are layered: Default, then the YAML file, then the environment
// (after a .env file has been loaded into it), then command-line flags.
type Config struct {
	// The address the HTTP server listens on.
	Addr string `yaml:"addr" envconfig:"HTTPLAB_ADDR"`

	// The resolver backend used by /dns-lookup: "system" or "resolvconf".
	Resolver string `yaml:"resolver" envconfig:"HTTPLAB_RESOLVER"`
	// The resolv.conf file read by the resolvconf backend.
	ResolvConf string `yaml:"resolv_conf" envconfig:"HTTPLAB_RESOLV_CONF"`
	// The upper bound for a single domain lookup. It must be greater than 0.
	LookupTimeout time.Duration `yaml:"lookup_timeout" envconfig:"HTTPLAB_LOOKUP_TIMEOUT"`
	// The number of lookups allowed in flight at once. It must be greater than 0.
	MaxConcurrentLookups int64 `yaml:"max_concurrent_lookups" envconfig:"HTTPLAB_MAX_CONCURRENT_LOOKUPS"`

	// Artificial latency added to GET /echo. Zero disables it.
	EchoDelay time.Duration `yaml:"echo_delay" envconfig:"HTTPLAB_ECHO_DELAY"`
	// How long in-flight requests get to finish on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"HTTPLAB_SHUTDOWN_TIMEOUT"`
	// Origins allowed to call the API from a browser. "*" allows all, an empty list disables CORS.
	CORSOrigins []string `yaml:"cors_origins" envconfig:"HTTPLAB_CORS_ORIGINS"`

	// Optional MaxMind databases used by /ip-info.
	MMDBCityPath string `yaml:"mmdb_city_path" envconfig:"HTTPLAB_MMDB_CITY_PATH"`
	MMDBASNPath  string `yaml:"mmdb_asn_path" envconfig:"HTTPLAB_MMDB_ASN_PATH"`

	LogLevel  string `yaml:"log_level" envconfig:"HTTPLAB_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"HTTPLAB_LOG_FORMAT"`
	GinMode   string `yaml:"gin_mode" envconfig:"HTTPLAB_GIN_MODE"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Addr:                 "127.0.0.1:8080",
		Resolver:             resolver.SystemBackendName,
		ResolvConf:           resolver.DefaultResolvConfPath,
		LookupTimeout:        10 * time.Second,
		MaxConcurrentLookups: resolver.DefaultMaxConcurrentLookups,
		ShutdownTimeout:      5 * time.Second,
		CORSOrigins:          []string{"http://localhost:3000"},
		LogLevel:             "info",
		LogFormat:            "text",
		GinMode:              "release",
	}
}

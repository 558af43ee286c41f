package config

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vit0-9/http_playground/pkg/resolver"
)

// Validate reports every invalid field of the configuration at once.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}

	var errs []error
	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("'addr' is required"))
	}
	switch c.Resolver {
	case resolver.SystemBackendName:
	case resolver.ResolvConfBackendName:
		if c.ResolvConf == "" {
			errs = append(errs, fmt.Errorf("'resolv_conf' is required for the %s resolver", resolver.ResolvConfBackendName))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported 'resolver': %q", c.Resolver))
	}
	if c.LookupTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid 'lookup_timeout': %s", c.LookupTimeout))
	}
	if c.MaxConcurrentLookups <= 0 {
		errs = append(errs, fmt.Errorf("invalid 'max_concurrent_lookups': %d", c.MaxConcurrentLookups))
	}
	if c.EchoDelay < 0 {
		errs = append(errs, fmt.Errorf("invalid 'echo_delay': %s", c.EchoDelay))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid 'shutdown_timeout': %s", c.ShutdownTimeout))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid 'log_level': %w", err))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unsupported 'log_format': %q", c.LogFormat))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("unsupported 'gin_mode': %q", c.GinMode))
	}
	return errors.Join(errs...)
}

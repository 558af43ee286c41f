package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// BindFlags registers the command-line overrides on fs. Only flags the user
// actually sets are applied by ApplyFlags.
func BindFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("addr", def.Addr, "address to listen on")
	fs.String("resolver", def.Resolver, "resolver backend: system or resolvconf")
	fs.String("resolv-conf", def.ResolvConf, "resolv.conf used by the resolvconf backend")
	fs.Duration("lookup-timeout", def.LookupTimeout, "upper bound for a single DNS lookup")
	fs.Int64("max-concurrent-lookups", def.MaxConcurrentLookups, "number of DNS lookups allowed in flight")
	fs.Duration("echo-delay", def.EchoDelay, "artificial latency added to GET /echo")
	fs.StringSlice("cors-origins", def.CORSOrigins, "origins allowed by CORS, * for any")
	fs.String("log-level", def.LogLevel, "log level")
	fs.String("log-format", def.LogFormat, "log format: text or json")
}

// ApplyFlags copies every flag set on fs into cfg and revalidates it.
func ApplyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "addr":
			cfg.Addr, err = fs.GetString(f.Name)
		case "resolver":
			cfg.Resolver, err = fs.GetString(f.Name)
		case "resolv-conf":
			cfg.ResolvConf, err = fs.GetString(f.Name)
		case "lookup-timeout":
			cfg.LookupTimeout, err = fs.GetDuration(f.Name)
		case "max-concurrent-lookups":
			cfg.MaxConcurrentLookups, err = fs.GetInt64(f.Name)
		case "echo-delay":
			cfg.EchoDelay, err = fs.GetDuration(f.Name)
		case "cors-origins":
			cfg.CORSOrigins, err = fs.GetStringSlice(f.Name)
		case "log-level":
			cfg.LogLevel, err = fs.GetString(f.Name)
		case "log-format":
			cfg.LogFormat, err = fs.GetString(f.Name)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

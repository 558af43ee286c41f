package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg, err := load("", envMap(nil))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(cfg).To(gomega.Equal(Default()))
	g.Expect(cfg.Addr).To(gomega.Equal("127.0.0.1:8080"))
	g.Expect(cfg.Resolver).To(gomega.Equal("system"))
	g.Expect(cfg.LookupTimeout).To(gomega.Equal(10 * time.Second))
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	g := gomega.NewWithT(t)
	path := writeConfigFile(t, `
addr: 0.0.0.0:9090
resolver: resolvconf
resolv_conf: /tmp/resolv.conf
lookup_timeout: 2s
echo_delay: 500ms
cors_origins: ["*"]
`)
	cfg, err := load(path, envMap(nil))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(cfg.Addr).To(gomega.Equal("0.0.0.0:9090"))
	g.Expect(cfg.Resolver).To(gomega.Equal("resolvconf"))
	g.Expect(cfg.ResolvConf).To(gomega.Equal("/tmp/resolv.conf"))
	g.Expect(cfg.LookupTimeout).To(gomega.Equal(2 * time.Second))
	g.Expect(cfg.EchoDelay).To(gomega.Equal(500 * time.Millisecond))
	g.Expect(cfg.CORSOrigins).To(gomega.Equal([]string{"*"}))
	// Untouched keys keep their defaults.
	g.Expect(cfg.ShutdownTimeout).To(gomega.Equal(5 * time.Second))
	g.Expect(cfg.LogLevel).To(gomega.Equal("info"))
}

func TestLoad_EnvironmentOverridesYAML(t *testing.T) {
	g := gomega.NewWithT(t)
	path := writeConfigFile(t, "addr: 0.0.0.0:9090\nlog_level: warn\n")
	cfg, err := load(path, envMap(map[string]string{
		"HTTPLAB_ADDR":                   ":7070",
		"HTTPLAB_MAX_CONCURRENT_LOOKUPS": "4",
		"HTTPLAB_LOOKUP_TIMEOUT":         "250ms",
		"HTTPLAB_CORS_ORIGINS":           "http://a.test,http://b.test",
	}))
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(cfg.Addr).To(gomega.Equal(":7070"))
	g.Expect(cfg.MaxConcurrentLookups).To(gomega.BeEquivalentTo(4))
	g.Expect(cfg.LookupTimeout).To(gomega.Equal(250 * time.Millisecond))
	g.Expect(cfg.CORSOrigins).To(gomega.Equal([]string{"http://a.test", "http://b.test"}))
	g.Expect(cfg.LogLevel).To(gomega.Equal("warn"))
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	g := gomega.NewWithT(t)
	t.Setenv("HTTPLAB_RESOLVER", "resolvconf")
	cfg, err := Load("")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(cfg.Resolver).To(gomega.Equal("resolvconf"))
}

func TestLoad_Errors(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := load("/tmp/does-not-exist.yaml", envMap(nil))
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("failed to read config file")))

	_, err = load(writeConfigFile(t, "addr: [unterminated"), envMap(nil))
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("failed to unmarshal yaml")))

	_, err = load("", envMap(map[string]string{"HTTPLAB_LOOKUP_TIMEOUT": "soon"}))
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("failed to read environment")))

	_, err = load("", envMap(map[string]string{"HTTPLAB_RESOLVER": "carrier-pigeon"}))
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("unsupported 'resolver'")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty addr", mutate: func(c *Config) { c.Addr = "" }, wantErr: "'addr' is required"},
		{name: "unknown resolver", mutate: func(c *Config) { c.Resolver = "doh" }, wantErr: "unsupported 'resolver'"},
		{name: "resolvconf without file", mutate: func(c *Config) { c.Resolver = "resolvconf"; c.ResolvConf = "" }, wantErr: "'resolv_conf' is required"},
		{name: "zero lookup timeout", mutate: func(c *Config) { c.LookupTimeout = 0 }, wantErr: "invalid 'lookup_timeout'"},
		{name: "zero pool", mutate: func(c *Config) { c.MaxConcurrentLookups = 0 }, wantErr: "invalid 'max_concurrent_lookups'"},
		{name: "negative echo delay", mutate: func(c *Config) { c.EchoDelay = -time.Second }, wantErr: "invalid 'echo_delay'"},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: "invalid 'shutdown_timeout'"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid 'log_level'"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "unsupported 'log_format'"},
		{name: "bad gin mode", mutate: func(c *Config) { c.GinMode = "turbo" }, wantErr: "unsupported 'gin_mode'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				g.Expect(err).ToNot(gomega.HaveOccurred())
				return
			}
			g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring(tt.wantErr)))
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := Default()
	cfg.LookupTimeout = 0
	cfg.LogFormat = "xml"
	err := cfg.Validate()
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("lookup_timeout")))
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("log_format")))
}

func TestApplyFlags(t *testing.T) {
	g := gomega.NewWithT(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	g.Expect(fs.Parse([]string{"--addr", ":6060", "--lookup-timeout", "3s", "--cors-origins", "*"})).To(gomega.Succeed())

	cfg := Default()
	cfg.LogLevel = "debug"
	g.Expect(ApplyFlags(fs, cfg)).To(gomega.Succeed())
	g.Expect(cfg.Addr).To(gomega.Equal(":6060"))
	g.Expect(cfg.LookupTimeout).To(gomega.Equal(3 * time.Second))
	g.Expect(cfg.CORSOrigins).To(gomega.Equal([]string{"*"}))
	// Flags left at their default do not clobber lower layers.
	g.Expect(cfg.LogLevel).To(gomega.Equal("debug"))
}

func TestApplyFlags_Invalid(t *testing.T) {
	g := gomega.NewWithT(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	g.Expect(fs.Parse([]string{"--max-concurrent-lookups", "0"})).To(gomega.Succeed())
	g.Expect(ApplyFlags(fs, Default())).To(gomega.MatchError(gomega.ContainSubstring("max_concurrent_lookups")))
}

package resolver

import (
	"context"
	"net"
	"net/netip"
)

// SystemBackendName is the config name of SystemBackend.
const SystemBackendName = "system"

// SystemBackend resolves through the host's configured mechanism: hosts
// file, nsswitch (via cgo where enabled) and the resolv.conf name servers.
type SystemBackend struct {
	resolver *net.Resolver
}

// NewSystemBackend returns a backend on top of net.DefaultResolver.
func NewSystemBackend() *SystemBackend {
	return &SystemBackend{resolver: net.DefaultResolver}
}

func (b *SystemBackend) Name() string {
	return SystemBackendName
}

func (b *SystemBackend) LookupIP(ctx context.Context, host string) ([]netip.Addr, error) {
	return b.resolver.LookupNetIP(ctx, "ip", host)
}

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"slices"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"
)

const (
	// ResolvConfBackendName is the config name of ResolvConfBackend.
	ResolvConfBackendName = "resolvconf"
	// DefaultResolvConfPath is where the system resolver configuration lives on unix hosts.
	DefaultResolvConfPath = "/etc/resolv.conf"
)

// ResolvConfBackend queries the name servers listed in a resolv.conf file
// directly with miekg/dns. The hosts file is consulted first and names under
// localhost. always resolve to loopback. Both files are read on every lookup
// so edits take effect without a restart. Search domains and ndots are honoured.
type ResolvConfBackend struct {
	path      string
	hostsPath string
	port      string
}

// ResolvConfOption configures a ResolvConfBackend.
type ResolvConfOption func(*ResolvConfBackend)

// WithServerPort overrides the port taken from the configuration file (53),
// for local forwarders listening elsewhere.
func WithServerPort(port string) ResolvConfOption {
	return func(b *ResolvConfBackend) {
		b.port = port
	}
}

// WithHostsFile replaces DefaultHostsPath. An empty path disables the hosts lookup.
func WithHostsFile(path string) ResolvConfOption {
	return func(b *ResolvConfBackend) {
		b.hostsPath = path
	}
}

// NewResolvConfBackend reads its name servers from path.
func NewResolvConfBackend(path string, opts ...ResolvConfOption) *ResolvConfBackend {
	if path == "" {
		path = DefaultResolvConfPath
	}
	b := &ResolvConfBackend{path: path, hostsPath: DefaultHostsPath}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *ResolvConfBackend) Name() string {
	return ResolvConfBackendName
}

func (b *ResolvConfBackend) LookupIP(ctx context.Context, host string) ([]netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return []netip.Addr{addr}, nil
	}
	if _, ok := dns.IsDomainName(host); !ok || host == "" {
		return nil, fmt.Errorf("invalid domain name %q", host)
	}

	if b.hostsPath != "" {
		addrs, err := lookupHosts(b.hostsPath, host)
		if err != nil {
			return nil, fmt.Errorf("read hosts file %s: %w", b.hostsPath, err)
		}
		if len(addrs) > 0 {
			return addrs, nil
		}
	}
	if isLocalhost(host) {
		return slices.Clone(loopbackAddrs), nil
	}

	conf, err := dns.ClientConfigFromFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	if len(conf.Servers) == 0 {
		return nil, fmt.Errorf("%w: no nameserver in %s", ErrConfigUnavailable, b.path)
	}
	if b.port != "" {
		conf.Port = b.port
	}

	// A candidate without records (NODATA) does not end the search, the
	// next one may still have addresses.
	lastErr := fmt.Errorf("lookup %s: %w", host, ErrNoSuchHost)
	var noData bool
	for _, name := range conf.NameList(host) {
		addrs, err := b.lookupName(ctx, conf, name)
		switch {
		case err == nil && len(addrs) > 0:
			return addrs, nil
		case err == nil:
			noData = true
		case errors.Is(err, ErrNoSuchHost):
			lastErr = err
		default:
			return nil, err
		}
	}
	if noData {
		return []netip.Addr{}, nil
	}
	return nil, lastErr
}

// lookupName asks for A and AAAA concurrently and returns the IPv4 answers
// followed by the IPv6 ones.
func (b *ResolvConfBackend) lookupName(ctx context.Context, conf *dns.ClientConfig, name string) ([]netip.Addr, error) {
	var v4, v6 []netip.Addr
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v4, err = b.query(gctx, conf, name, dns.TypeA)
		return err
	})
	g.Go(func() error {
		var err error
		v6, err = b.query(gctx, conf, name, dns.TypeAAAA)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	addrs := make([]netip.Addr, 0, len(v4)+len(v6))
	addrs = append(addrs, v4...)
	return append(addrs, v6...), nil
}

// query tries each configured server in turn, conf.Attempts times over.
func (b *ResolvConfBackend) query(ctx context.Context, conf *dns.ClientConfig, name string, qtype uint16) ([]netip.Addr, error) {
	timeout := time.Duration(conf.Timeout) * time.Second
	udp := &dns.Client{Net: "udp", Timeout: timeout}
	tcp := &dns.Client{Net: "tcp", Timeout: timeout}

	m := new(dns.Msg)
	m.SetQuestion(name, qtype)
	m.RecursionDesired = true

	attempts := conf.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		for _, server := range conf.Servers {
			addr := net.JoinHostPort(server, conf.Port)
			in, _, err := udp.ExchangeContext(ctx, m, addr)
			if err == nil && in.Truncated {
				in, _, err = tcp.ExchangeContext(ctx, m, addr)
			}
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				lastErr = fmt.Errorf("query %s %s at %s: %w", dns.TypeToString[qtype], name, addr, err)
				continue
			}

			switch in.Rcode {
			case dns.RcodeSuccess:
				return answerAddrs(in.Answer, qtype), nil
			case dns.RcodeNameError:
				return nil, fmt.Errorf("lookup %s on %s: %w", name, addr, ErrNoSuchHost)
			default:
				lastErr = fmt.Errorf("lookup %s on %s: server answered %s", name, addr, dns.RcodeToString[in.Rcode])
			}
		}
	}
	return nil, lastErr
}

func answerAddrs(answer []dns.RR, qtype uint16) []netip.Addr {
	var addrs []netip.Addr
	for _, rr := range answer {
		var ip net.IP
		switch v := rr.(type) {
		case *dns.A:
			if qtype == dns.TypeA {
				ip = v.A
			}
		case *dns.AAAA:
			if qtype == dns.TypeAAAA {
				ip = v.AAAA
			}
		}
		if addr, ok := netip.AddrFromSlice(ip); ok {
			addrs = append(addrs, addr.Unmap())
		}
	}
	return addrs
}

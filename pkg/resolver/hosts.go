package resolver

import (
	"bufio"
	"errors"
	"io/fs"
	"net/netip"
	"os"
	"strings"
)

// DefaultHostsPath is the static host table consulted before any name server.
const DefaultHostsPath = "/etc/hosts"

// lookupHosts returns the addresses listed for host in the hosts file at
// path, IPv4 before IPv6. A missing file is treated as empty.
func lookupHosts(path, host string) ([]netip.Addr, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := canonicalHost(host)
	var v4, v6 []netip.Addr
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		addr, err := netip.ParseAddr(fields[0])
		if err != nil {
			continue
		}
		addr = addr.WithZone("").Unmap()
		for _, alias := range fields[1:] {
			if canonicalHost(alias) != name {
				continue
			}
			if addr.Is4() {
				v4 = append(v4, addr)
			} else {
				v6 = append(v6, addr)
			}
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return append(v4, v6...), nil
}

// isLocalhost reports whether host falls in the localhost. zone, which
// always resolves to loopback (RFC 6761 section 6.3).
func isLocalhost(host string) bool {
	name := canonicalHost(host)
	return name == "localhost" || strings.HasSuffix(name, ".localhost")
}

var loopbackAddrs = []netip.Addr{netip.MustParseAddr("127.0.0.1"), netip.IPv6Loopback()}

func canonicalHost(host string) string {
	return strings.ToLower(strings.TrimSuffix(host, "."))
}

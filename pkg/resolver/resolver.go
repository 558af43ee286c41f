// Package resolver turns domain names into IP addresses and measures how long it took.
package resolver

import (
	"context"
	"net/netip"
	"time"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrentLookups bounds the number of lookups in flight per Service.
const DefaultMaxConcurrentLookups = 64

// Backend performs the actual name resolution. Implementations must be safe
// for concurrent use.
type Backend interface {
	// Name identifies the backend in logs and metrics.
	Name() string
	// LookupIP returns every A and AAAA address known for host, in the order
	// the underlying mechanism supplied them.
	LookupIP(ctx context.Context, host string) ([]netip.Addr, error)
}

// Observer is notified about every finished backend call.
type Observer interface {
	ObserveLookup(backend string, elapsed time.Duration, addrs int, err error)
}

// LookupResult is the outcome of a successful resolution.
type LookupResult struct {
	Domain       string       `json:"domain" example:"example.com"`
	IPAddresses  []netip.Addr `json:"ip_addresses" swaggertype:"array,string" example:"93.184.215.14,2606:2800:21f:cb07:6820:80da:af6b:8b2c"`
	LookupTimeMs int64        `json:"lookup_time_ms" example:"12"`
}

// Service resolves domains through a Backend on a bounded pool of lookup slots.
type Service struct {
	backend  Backend
	slots    *semaphore.Weighted
	observer Observer
}

// Option configures a Service.
type Option func(*Service)

// WithMaxConcurrentLookups sets the pool size. Values below 1 are ignored.
func WithMaxConcurrentLookups(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.slots = semaphore.NewWeighted(n)
		}
	}
}

// WithObserver registers an Observer for finished lookups.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// New creates a Service on top of backend.
func New(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		slots:   semaphore.NewWeighted(DefaultMaxConcurrentLookups),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the name of the configured backend.
func (s *Service) Backend() string {
	return s.backend.Name()
}

// Resolve looks up all addresses of domain. Every failure, including ctx
// expiring while waiting for a free slot, is returned as *ResolutionError.
// A lookup that succeeds without records yields an empty, non-nil address list.
func (s *Service) Resolve(ctx context.Context, domain string) (*LookupResult, error) {
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, &ResolutionError{Domain: domain, Err: err}
	}
	defer s.slots.Release(1)

	start := time.Now()
	addrs, err := s.backend.LookupIP(ctx, domain)
	elapsed := time.Since(start)

	if s.observer != nil {
		s.observer.ObserveLookup(s.backend.Name(), elapsed, len(addrs), err)
	}
	if err != nil {
		return nil, &ResolutionError{Domain: domain, Err: err}
	}

	ips := make([]netip.Addr, 0, len(addrs))
	for _, addr := range addrs {
		ips = append(ips, addr.Unmap())
	}

	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return &LookupResult{
		Domain:       domain,
		IPAddresses:  ips,
		LookupTimeMs: ms,
	}, nil
}

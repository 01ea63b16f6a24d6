package discovery

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/multispin/internal/logging"
)

const (
	// ServiceType is the mDNS service type of multispin session servers
	ServiceType = "_multispin._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for endpoint discovery
	DefaultScanTimeout = 5 * time.Second

	// DefaultPath is the WebSocket path when the TXT record names none
	DefaultPath = "/ws"
)

// TXT record keys
const (
	TxtVersion = "version"
	TxtPreset  = "preset"
	TxtPath    = "path"
)

// escapePattern matches DNS-SD escapes in instance names (e.g., "multispin\ on\ studio")
var escapePattern = regexp.MustCompile(`\\(.)`)

// Scanner handles mDNS endpoint discovery
type Scanner struct {
	// Timeout is the maximum time to wait for endpoint discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan browses for session servers until the timeout or ctx ends and
// returns every endpoint seen, deduplicated by instance name.
func (s *Scanner) Scan(ctx context.Context) ([]*Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu        sync.Mutex
		endpoints []*Endpoint
		seen      = make(map[string]bool)
	)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			ep := parseServiceEntry(entry)
			if ep == nil {
				continue
			}
			mu.Lock()
			if !seen[ep.Instance] {
				seen[ep.Instance] = true
				endpoints = append(endpoints, ep)
				logging.Debug("Discovered session server",
					zap.String("instance", ep.Instance),
					zap.String("ip", ep.IP),
					zap.Int("port", ep.Port),
				)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]*Endpoint(nil), endpoints...), nil
}

// Find waits for the endpoint with the given instance name.
func (s *Scanner) Find(ctx context.Context, instance string) (*Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Endpoint, 1)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			ep := parseServiceEntry(entry)
			if ep != nil && ep.Instance == instance {
				select {
				case found <- ep:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case ep := <-found:
		return ep, nil
	case <-ctx.Done():
		select {
		case ep := <-found:
			return ep, nil
		default:
		}
		return nil, fmt.Errorf("session server %q not found within timeout", instance)
	}
}

// parseServiceEntry converts a zeroconf service entry to an Endpoint.
// Returns nil if the entry has no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Endpoint {
	if entry == nil || entry.Instance == "" {
		return nil
	}

	// Get IP address (prefer IPv4)
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" || entry.Port == 0 {
		return nil
	}

	return &Endpoint{
		Instance:     unescapeInstance(entry.Instance),
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     parseTxt(entry.Text),
		DiscoveredAt: time.Now(),
	}
}

// parseTxt splits "key=value" TXT records. A key without "=" maps to "".
func parseTxt(records []string) map[string]string {
	metadata := make(map[string]string, len(records))
	for _, txt := range records {
		key, value, _ := strings.Cut(txt, "=")
		if key == "" {
			continue
		}
		metadata[key] = value
	}
	return metadata
}

func unescapeInstance(name string) string {
	return escapePattern.ReplaceAllString(name, "$1")
}

// Scan is a convenience function to scan for endpoints with a custom timeout
func Scan(ctx context.Context, timeout time.Duration) ([]*Endpoint, error) {
	scanner := NewScanner()
	scanner.Timeout = timeout
	return scanner.Scan(ctx)
}

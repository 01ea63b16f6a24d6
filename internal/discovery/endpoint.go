package discovery

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Endpoint represents a session server discovered on the network
type Endpoint struct {
	// Instance is the advertised service instance name (e.g., "multispin on studio")
	Instance string

	// Hostname is the mDNS hostname (e.g., "studio.local.")
	Hostname string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the WebSocket port
	Port int

	// Metadata contains the TXT record data
	// Common fields: "version=1.2.0", "preset=time", "path=/ws"
	Metadata map[string]string

	// DiscoveredAt is when the endpoint was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the endpoint
func (e *Endpoint) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Instance, e.Hostname, net.JoinHostPort(e.IP, strconv.Itoa(e.Port)))
}

// URL returns the WebSocket URL of the endpoint. An empty preset leaves the
// choice to the server.
func (e *Endpoint) URL(preset string) string {
	path := e.GetMetadata(TxtPath)
	if path == "" {
		path = DefaultPath
	}
	u := url.URL{
		Scheme: "ws",
		Host:   net.JoinHostPort(e.IP, strconv.Itoa(e.Port)),
		Path:   path,
	}
	if preset != "" {
		u.RawQuery = url.Values{"preset": {preset}}.Encode()
	}
	return u.String()
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (e *Endpoint) GetMetadata(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}

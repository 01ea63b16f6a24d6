package discovery

import (
	"fmt"
	"os"
	"sort"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/multispin/internal/logging"
)

// Advertiser announces a session server on the local network until
// Shutdown is called.
type Advertiser struct {
	server   *zeroconf.Server
	instance string
}

// DefaultInstance returns "multispin on <hostname>".
func DefaultInstance() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return "multispin on " + host
}

// Advertise registers the instance under ServiceType on all interfaces.
func Advertise(instance string, port int, metadata map[string]string) (*Advertiser, error) {
	if instance == "" {
		instance = DefaultInstance()
	}
	if port <= 0 {
		return nil, fmt.Errorf("invalid port %d", port)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, formatTxt(metadata), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising session server",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	return &Advertiser{server: server, instance: instance}, nil
}

// Instance returns the advertised instance name.
func (a *Advertiser) Instance() string {
	return a.instance
}

// Shutdown withdraws the advertisement.
func (a *Advertiser) Shutdown() {
	if a.server == nil {
		return
	}
	a.server.Shutdown()
	a.server = nil
	logging.Info("Stopped advertising session server", zap.String("instance", a.instance))
}

// formatTxt renders metadata as sorted "key=value" records.
func formatTxt(metadata map[string]string) []string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]string, 0, len(keys))
	for _, k := range keys {
		if metadata[k] == "" {
			records = append(records, k)
			continue
		}
		records = append(records, k+"="+metadata[k])
	}
	return records
}

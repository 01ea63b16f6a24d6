// Package discovery advertises and finds multispin session servers with
// multicast DNS.
//
// Session servers register themselves as "_multispin._tcp" services. The TXT
// record carries the server version, its default preset and the WebSocket
// path:
//
//	version=1.2.0
//	preset=time
//	path=/ws
//
// # Usage Example
//
//	// Announce a server listening on port 8765
//	adv, err := discovery.Advertise("", 8765, map[string]string{
//	    discovery.TxtPreset: "time",
//	    discovery.TxtPath:   discovery.DefaultPath,
//	})
//	if err != nil {
//	    return err
//	}
//	defer adv.Shutdown()
//
//	// Elsewhere, list servers for three seconds
//	endpoints, err := discovery.Scan(ctx, 3*time.Second)
//	for _, ep := range endpoints {
//	    fmt.Println(ep, ep.URL("rgb"))
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery

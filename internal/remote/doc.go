// Package remote serves headless spin box sessions over WebSocket.
//
// Each connection owns one spin box configured from a preset of the
// configuration registry. Clients drive it with JSON commands and receive
// the notifications each command raised followed by a state snapshot.
//
// # Protocol
//
// Client messages carry a "type" field:
//
//	{"type":"key","key":"shift+tab"}
//	{"type":"text","text":"12"}
//	{"type":"cursor","position":4}
//	{"type":"values","values":[12,34,56]}
//	{"type":"step","steps":-10}
//	{"type":"focus","focus":"out","reason":"mouse"}
//	{"type":"clear"}
//	{"type":"section","section":2}
//
// The server answers every message with zero or more "values_changed",
// "editing_finished" and "error" messages followed by one "state" message.
// A state message is also sent when the connection opens.
//
// # Usage Example
//
//	srv, err := remote.New(&remote.Config{
//	    Host:          "127.0.0.1",
//	    Port:          8765,
//	    DefaultPreset: "time",
//	    Registry:      registry,
//	})
//	if err != nil {
//	    return err
//	}
//	return srv.Start(ctx)
//
// Clients pick another preset with ws://host:port/ws?preset=rgb.
package remote

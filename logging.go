package servicebus

import "github.com/go-logr/logr"

// logger is the sink this package writes its few log lines to. It defaults to discarding everything, the way
// a library with no service of its own should behave until a host wires one in.
var logger = logr.Discard()

// SetLogger installs l as the destination for this package's log lines (resource-factory registration,
// settlement-channel dialing). Call once during worker bootstrap, alongside RegisterServiceBusFactory.
func SetLogger(l logr.Logger) {
	logger = l
}

package servicebus

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// TransportConfig is the gRPC settlement channel bootstrap configuration described in §6.
type TransportConfig struct {
	Host             string
	Port             int
	MaxMessageLength int
}

// ParseTransportArgs parses the process argument vector's transport flags. It takes an explicit argument
// slice rather than reading os.Args directly so it stays testable, in the same spirit as the teacher's
// functional-option constructors taking their configuration as explicit values rather than reaching for
// ambient state.
func ParseTransportArgs(args []string) (*TransportConfig, error) {
	fs := flag.NewFlagSet("servicebus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	host := fs.String("host", "", "gRPC host for the settlement channel")
	port := fs.Int("port", 0, "gRPC port for the settlement channel")
	maxMessageLength := fs.Int("functions-grpc-max-message-length", 0, "send/receive message size cap in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		seen[f.Name] = true
	})

	var missing []string
	if !seen["host"] {
		missing = append(missing, "host")
	}
	if !seen["port"] {
		missing = append(missing, "port")
	}
	if !seen["functions-grpc-max-message-length"] {
		missing = append(missing, "functions-grpc-max-message-length")
	}
	if len(missing) > 0 {
		quoted := make([]string, len(missing))
		for i, name := range missing {
			quoted[i] = "'" + name + "'"
		}
		return nil, fmt.Errorf("Missing required arguments: %s", strings.Join(quoted, ", "))
	}

	return &TransportConfig{Host: *host, Port: *port, MaxMessageLength: *maxMessageLength}, nil
}

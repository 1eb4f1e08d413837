package logger

import "strings"

// Transport identifies a sink kind.
type Transport int

const (
	TransportConsole Transport = iota
	TransportFile
	TransportDatadog
	TransportKafka
)

func (t Transport) String() string {
	switch t {
	case TransportConsole:
		return "console"
	case TransportFile:
		return "file"
	case TransportDatadog:
		return "datadog"
	case TransportKafka:
		return "kafka"
	default:
		return "unknown"
	}
}

// ParseTransport maps a single configured name. The second result is false
// for unrecognized names, in which case the console transport is returned.
func ParseTransport(name string) (Transport, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "console":
		return TransportConsole, true
	case "file":
		return TransportFile, true
	case "datadog", "external-collector":
		return TransportDatadog, true
	case "kafka":
		return TransportKafka, true
	default:
		return TransportConsole, false
	}
}

// ResolveTransports turns the configured names into the ordered sink list.
// Every unrecognized entry contributes its own console transport and duplicates
// are kept, so a name listed twice writes every record twice. "both" expands to
// console followed by file. An empty list counts as one unrecognized entry.
func ResolveTransports(names []string) []Transport {
	if len(names) == 0 {
		names = []string{""}
	}

	out := make([]Transport, 0, len(names))
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "both") {
			out = append(out, TransportConsole, TransportFile)
			continue
		}
		t, _ := ParseTransport(name)
		out = append(out, t)
	}
	return out
}

package dlna

import (
	"fmt"
	"strings"
)

// TransportStreamTimestamp describes whether an MPEG2 transport stream carries
// 4-byte timestamps in front of each packet
type TransportStreamTimestamp int

const (
	// TimestampUnspecified contributes no profile suffix
	TimestampUnspecified TransportStreamTimestamp = iota
	// TimestampNone marks 188-byte packets without timestamps (_ISO)
	TimestampNone
	// TimestampValid marks 192-byte packets with valid timestamps (_T)
	TimestampValid
)

// suffix returns the profile-name suffix contributed by the timestamp kind
func (t TransportStreamTimestamp) suffix() string {
	switch t {
	case TimestampNone:
		return "_ISO"
	case TimestampValid:
		return "_T"
	default:
		return ""
	}
}

// String returns the lower-case name used on the wire
func (t TransportStreamTimestamp) String() string {
	switch t {
	case TimestampNone:
		return "none"
	case TimestampValid:
		return "valid"
	default:
		return ""
	}
}

// ParseTransportStreamTimestamp parses "none", "valid" or an empty string
func ParseTransportStreamTimestamp(s string) (TransportStreamTimestamp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified":
		return TimestampUnspecified, nil
	case "none":
		return TimestampNone, nil
	case "valid":
		return TimestampValid, nil
	default:
		return TimestampUnspecified, fmt.Errorf("unknown transport stream timestamp %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t TransportStreamTimestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TransportStreamTimestamp) UnmarshalText(text []byte) error {
	v, err := ParseTransportStreamTimestamp(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

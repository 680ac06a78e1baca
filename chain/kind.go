package chain

import (
	"fmt"
	"strings"
)

// Kind tags a handler variant.
type Kind int

const (
	// Authentication requires a token in the payload. It never short-circuits.
	Authentication Kind = iota + 1
	// DataValidation requires data in the payload.
	DataValidation
	// Logging records the request. It never invalidates.
	Logging
)

var kindNames = map[Kind]string{
	Authentication: "authentication",
	DataValidation: "data-validation",
	Logging:        "logging",
}

var kindAliases = map[string]Kind{
	"auth":       Authentication,
	"validation": DataValidation,
	"log":        Logging,
}

// DefaultKinds returns the reference execution order:
// authentication, then data validation, then logging.
func DefaultKinds() []Kind {
	return []Kind{Authentication, DataValidation, Logging}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) known() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a kind name, case-insensitively. Short aliases such as "auth" are accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

package almanac

import (
	"encoding/json"
	"fmt"
)

// CTAAction is the closed set of call-to-action variants a notice may carry.
type CTAAction interface {
	ctaKind() string
}

// Call dials a phone-like number.
type Call struct {
	Value string
}

// Link opens an external URL.
type Link struct {
	Value string
}

// Done is a payload-free acknowledgment action.
type Done struct{}

func (Call) ctaKind() string { return "call" }
func (Link) ctaKind() string { return "link" }
func (Done) ctaKind() string { return "done" }

// CTA boxes a CTAAction for JSON transport as {"type": ..., "value": ...}.
type CTA struct {
	Action CTAAction
}

type ctaWire struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

func (c CTA) MarshalJSON() ([]byte, error) {
	if c.Action == nil {
		return []byte("null"), nil
	}
	wire := ctaWire{Type: c.Action.ctaKind()}
	switch a := c.Action.(type) {
	case Call:
		wire.Value = a.Value
	case Link:
		wire.Value = a.Value
	}
	return json.Marshal(wire)
}

func (c *CTA) UnmarshalJSON(data []byte) error {
	var wire ctaWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Type {
	case "call":
		c.Action = Call{Value: wire.Value}
	case "link":
		c.Action = Link{Value: wire.Value}
	case "done":
		c.Action = Done{}
	default:
		return fmt.Errorf("unknown cta type %q", wire.Type)
	}
	return nil
}

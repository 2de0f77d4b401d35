// Package wire defines the client<->server message envelopes: request
// payloads, response variants and room notifications, plus the JSON codecs
// for the domain's externally-tagged enums (Bid, BidType, Player, Card).
package wire

import "encoding/json"

// Enum is an externally-tagged Rust-serde-style enum variant: a bare quoted
// string when the variant carries no data ("Ok"), or a single-key object
// when it does ({"Ok": {...}}).
type Enum struct {
	Variant string
	Data    any
}

// Tag builds a data-less enum variant.
func Tag(variant string) Enum { return Enum{Variant: variant} }

// TagWith builds an enum variant carrying data.
func TagWith(variant string, data any) Enum { return Enum{Variant: variant, Data: data} }

// MarshalJSON implements the externally-tagged encoding.
func (e Enum) MarshalJSON() ([]byte, error) {
	if e.Data == nil {
		return json.Marshal(e.Variant)
	}
	return json.Marshal(map[string]any{e.Variant: e.Data})
}

// UnmarshalJSON accepts either a bare string (data-less variant) or a
// single-key object (data-carrying variant), leaving Data as the raw
// message for the caller to decode against the expected shape.
func (e *Enum) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		e.Variant = s
		e.Data = nil
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	for k, v := range m {
		e.Variant = k
		e.Data = v
		break
	}
	return nil
}

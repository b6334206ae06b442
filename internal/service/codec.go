package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec lets Connect carry plain Go structs as application/json bodies.
// The request and response types here are hand-written DTOs rather than
// generated protobuf messages, so the default codecs do not apply.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

// WithJSONCodec returns the client/handler option wiring the JSON codec.
// Clients calling these services must use it too.
func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

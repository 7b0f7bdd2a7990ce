package settlementpb

import (
	"bytes"
	"encoding/gob"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype this package's messages are marshaled under. A real deployment of
// this service would generate protobuf wire types with protoc; without toolchain access this module encodes
// the same request/response shapes with encoding/gob instead of hand-rolled (and likely subtly wrong)
// protobuf framing — see DESIGN.md for the justification. Every call through SettlementClient/SettlementServer
// requests this codec explicitly via grpc.CallContentSubtype, so it never collides with any other service
// sharing the same connection.
const CodecName = "servicebuswire"

func init() {
	encoding.RegisterCodec(gobCodec{})
}

type gobCodec struct{}

func (gobCodec) Name() string { return CodecName }

func (gobCodec) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

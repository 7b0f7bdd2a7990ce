package servicebus

import (
	"bytes"

	"pack.ag/amqp"
)

// decodeAMQPMessage is the C1 adapter's decode entry point: a thin wrapper over pack.ag/amqp's own message
// codec, translating any decode failure into ErrAmqpDecodeFailed so callers never see a bare pack.ag error.
func decodeAMQPMessage(data []byte) (*amqp.Message, error) {
	msg := new(amqp.Message)
	if err := msg.Unmarshal(bytes.NewReader(data)); err != nil {
		return nil, ErrAmqpDecodeFailed{Cause: err}
	}
	return msg, nil
}

// encodeAMQPMap hands a map of natively-typed Go values to the AMQP codec for wire encoding as a map of AMQP
// scalars. Callers (C5) are responsible for choosing the Go type that makes the codec pick the minimal-width
// AMQP primitive the spec requires (e.g. int16 for a value that fits 16 bits).
func encodeAMQPMap(values map[string]interface{}) ([]byte, error) {
	return amqp.Marshal(values)
}

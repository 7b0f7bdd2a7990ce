package servicebus

import (
	"bytes"
	"errors"

	"pack.ag/amqp"
)

var errEmptyAMQPSlice = errors.New("no AMQP bytes remain after the 16-byte lock token prefix")

// decodeBindingPayload is C3: it splits a host-supplied binding content buffer into a lock token and an AMQP
// message. The marker's byte offset is used only to confirm the host wrote a lock-token-shaped payload; the
// leading 16 bytes of the buffer are what actually carry the token, and the AMQP-encoded message begins at a
// fixed offset of 16, not at the marker index + len(marker).
func decodeBindingPayload(content []byte) (*amqp.Message, string, error) {
	if len(content) == 0 {
		return nil, "", ErrEmptyContent{}
	}
	markerIdx := bytes.Index(content, []byte(lockTokenMarker))
	if markerIdx < 0 {
		return nil, "", ErrLockTokenNotFound{}
	}

	lockToken := extractLockToken(content, 16)

	if len(content) <= 16 {
		return nil, "", ErrAmqpDecodeFailed{Cause: errEmptyAMQPSlice}
	}

	msg, err := decodeAMQPMessage(content[16:])
	if err != nil {
		return nil, "", err
	}
	return msg, lockToken, nil
}

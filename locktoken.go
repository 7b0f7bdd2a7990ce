package servicebus

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Azure/azure-amqp-common-go/v4/uuid"
)

// lockTokenMarker is the literal ASCII sentinel the host writes into the binding content right after the
// 16-byte lock token prefix. Its offset only signals presence; the prefix itself carries the token (§4.2).
const lockTokenMarker = "x-opt-lock-token"

// swapIndex exchanges two bytes of a 16-byte array in place. Copied from the teacher's own
// lockTokenFromMessageTag, which applies this exact translation to a delivery tag.
func swapIndex(indexOne, indexTwo int, b *[16]byte) {
	b[indexOne], b[indexTwo] = b[indexTwo], b[indexOne]
}

// renderLockToken formats a 16-byte settlement lock token as the canonical
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX UUID string the host expects on the wire. The swap sequence below is
// the teacher's own translation from the .NET Guid wire layout to the AMQP/RFC layout, applied to the raw
// prefix bytes before handing them to uuid.UUID for canonical string rendering.
func renderLockToken(b [16]byte) string {
	swapIndex(0, 3, &b)
	swapIndex(1, 2, &b)
	swapIndex(4, 5, &b)
	swapIndex(6, 7, &b)
	return uuid.UUID(b).String()
}

// extractLockToken takes the leading min(16, lengthHint, len(buf)) bytes of buf and renders them as a lock
// token string. Callers must guarantee at least 16 bytes of valid prefix before treating the result as
// authoritative; shorter input yields a string that round-trips through render/parse but does not identify a
// real lock.
func extractLockToken(buf []byte, lengthHint int) string {
	n := 16
	if lengthHint < n {
		n = lengthHint
	}
	if len(buf) < n {
		n = len(buf)
	}
	var b [16]byte
	copy(b[:], buf[:n])
	return renderLockToken(b)
}

// parseLockToken is the inverse of renderLockToken, used to verify the render/parse round trip.
func parseLockToken(s string) ([16]byte, error) {
	var out [16]byte
	groups := strings.Split(s, "-")
	if len(groups) != 5 {
		return out, fmt.Errorf("lock token %q does not have 5 hyphen-separated groups", s)
	}
	lens := []int{8, 4, 4, 4, 12}
	decoded := make([][]byte, 5)
	for i, g := range groups {
		if len(g) != lens[i] {
			return out, fmt.Errorf("lock token %q group %d has unexpected length", s, i)
		}
		b, err := hex.DecodeString(g)
		if err != nil {
			return out, fmt.Errorf("lock token %q group %d is not valid hex: %w", s, i, err)
		}
		decoded[i] = b
	}
	copy(out[0:4], reverseBytes(decoded[0]))
	copy(out[4:6], reverseBytes(decoded[1]))
	copy(out[6:8], reverseBytes(decoded[2]))
	copy(out[8:10], decoded[3])
	copy(out[10:16], decoded[4])
	return out, nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

package servicebus

//	MIT License
//
//	Copyright (c) Microsoft Corporation. All rights reserved.
//
//	Permission is hereby granted, free of charge, to any person obtaining a copy
//	of this software and associated documentation files (the "Software"), to deal
//	in the Software without restriction, including without limitation the rights
//	to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
//	copies of the Software, and to permit persons to whom the Software is
//	furnished to do so, subject to the following conditions:
//
//	The above copyright notice and this permission notice shall be included in all
//	copies or substantial portions of the Software.
//
//	THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
//	IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
//	FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
//	AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
//	LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//	OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
//	SOFTWARE

import (
	"encoding/json"
	"time"

	"github.com/mitchellh/mapstructure"
	"pack.ag/amqp"
)

// MessageState tracks where a received message sits in the settlement state machine described in §4.5. The
// library never transitions a message itself — the host does, in response to settlement RPCs — so every
// projected message starts active.
type MessageState string

const (
	MessageStateActive    MessageState = "active"
	MessageStateDeferred  MessageState = "deferred"
	MessageStateScheduled MessageState = "scheduled"
)

// ReceivedMessage is the normalized record handler code consumes. It is produced once per invocation by the
// Service Bus factory (C8) and dropped when the invocation ends; nothing in this package mutates one after
// projection.
type ReceivedMessage struct {
	Body interface{}

	MessageID        string
	CorrelationID    string
	ContentType      string
	Subject          string
	To               string
	ReplyTo          string
	ReplyToSessionID string
	SessionID        string
	TimeToLive       *int64 // milliseconds
	DeliveryCount    uint32
	LockToken        string

	ApplicationProperties map[string]interface{}

	EnqueuedTimeUTC        *time.Time
	LockedUntilUTC         *time.Time
	SequenceNumber         *int64
	EnqueuedSequenceNumber *int64

	DeadLetterReason           string
	DeadLetterErrorDescription string
	DeadLetterSource           string

	State MessageState

	// RawAMQPMessage is the back-reference advanced consumers use to recover exact body bytes the content-type
	// projection below may have lost precision on (large-number JSON bodies).
	RawAMQPMessage *amqp.Message
}

// systemAnnotations maps the subset of message-annotations §4.4 cares about onto the received-message record.
// The mapstructure tags follow the teacher's own annotation-decode idiom (message.go's SystemProperties) —
// mapstructure tolerates the amqp.Annotations key type (amqp.Symbol, whose underlying kind is string) the same
// way it did there.
type systemAnnotations struct {
	EnqueuedTime     *time.Time `mapstructure:"x-opt-enqueued-time"`
	LockedUntil      *time.Time `mapstructure:"x-opt-locked-until"`
	SequenceNumber   *int64     `mapstructure:"x-opt-sequence-number"`
	Offset           *int64     `mapstructure:"x-opt-offset"`
	DeadLetterSource *string    `mapstructure:"x-opt-deadletter-source"`
}

// projectReceivedMessage is C4: it maps a decoded AMQP annotated message plus its lock token onto a
// ReceivedMessage.
func projectReceivedMessage(msg *amqp.Message, lockToken string) (*ReceivedMessage, error) {
	rm := &ReceivedMessage{
		LockToken:             lockToken,
		ApplicationProperties: map[string]interface{}{},
		State:                 MessageStateActive,
		RawAMQPMessage:        msg,
	}

	if msg.Properties != nil {
		if id, ok := msg.Properties.MessageID.(string); ok {
			rm.MessageID = id
		}
		if cid, ok := msg.Properties.CorrelationID.(string); ok {
			rm.CorrelationID = cid
		}
		rm.ContentType = msg.Properties.ContentType
		rm.Subject = msg.Properties.Subject
		rm.To = msg.Properties.To
		rm.ReplyTo = msg.Properties.ReplyTo
		rm.ReplyToSessionID = msg.Properties.ReplyToGroupID
		rm.SessionID = msg.Properties.GroupID
	}

	if msg.Header != nil {
		rm.DeliveryCount = msg.Header.DeliveryCount
		if msg.Header.TTL > 0 {
			ms := msg.Header.TTL.Milliseconds()
			rm.TimeToLive = &ms
		}
	}

	if msg.ApplicationProperties != nil {
		for k, v := range msg.ApplicationProperties {
			rm.ApplicationProperties[k] = v
		}
		if reason, ok := msg.ApplicationProperties["DeadLetterReason"].(string); ok {
			rm.DeadLetterReason = reason
		}
		if desc, ok := msg.ApplicationProperties["DeadLetterErrorDescription"].(string); ok {
			rm.DeadLetterErrorDescription = desc
		}
	}

	if msg.Annotations != nil {
		var ann systemAnnotations
		if err := mapstructure.Decode(msg.Annotations, &ann); err != nil {
			return nil, newErrIncorrectType("message_annotations", systemAnnotations{}, msg.Annotations)
		}
		rm.EnqueuedTimeUTC = ann.EnqueuedTime
		rm.LockedUntilUTC = ann.LockedUntil
		rm.SequenceNumber = ann.SequenceNumber

		// Fallback rule (§4.4): enqueued_sequence_number adopts x-opt-offset when present, otherwise falls
		// back to x-opt-sequence-number. Added to fix a specific reported defect; keep both branches.
		switch {
		case ann.Offset != nil:
			rm.EnqueuedSequenceNumber = ann.Offset
		case ann.SequenceNumber != nil:
			seq := *ann.SequenceNumber
			rm.EnqueuedSequenceNumber = &seq
		}

		if ann.DeadLetterSource != nil {
			rm.DeadLetterSource = *ann.DeadLetterSource
		}
	}

	rm.Body = projectBody(msg)

	return rm, nil
}

// projectBody applies the content-type-aware body projection from §4.4. Only the binary body section
// (typecode 117, amqp.Message.Data) gets content-type interpretation; any other body section shape passes
// through as-is so advanced consumers still see it via RawAMQPMessage.
func projectBody(msg *amqp.Message) interface{} {
	if len(msg.Data) == 0 {
		if msg.Value != nil {
			return msg.Value
		}
		return nil
	}

	raw := msg.Data[0]
	contentType := ""
	if msg.Properties != nil {
		contentType = msg.Properties.ContentType
	}

	if contentType == "application/json" {
		var parsed interface{}
		if err := json.Unmarshal(raw, &parsed); err == nil {
			return parsed
		}
		// Invalid JSON falls through to the raw string rather than propagating a parse error (§4.4, §8.5c).
	}

	return string(raw)
}

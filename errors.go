package servicebus

import (
	"fmt"
	"reflect"
)

type (
	// ErrEmptyContent indicates a binding payload with no content bytes at all.
	ErrEmptyContent struct{}

	// ErrNullContent indicates a deferred-binding invocation whose content was missing or nil.
	ErrNullContent struct{}

	// ErrLockTokenNotFound indicates the host's lock-token marker was not present in the binding content.
	ErrLockTokenNotFound struct{}

	// ErrAmqpDecodeFailed wraps a failure from the AMQP codec while decoding a binding payload.
	ErrAmqpDecodeFailed struct {
		Cause error
	}

	// ErrArgumentError indicates a required field was missing: a settlement call's lock token or session ID, or
	// a blob binding's connection name.
	ErrArgumentError struct {
		Field string
	}

	// ErrIncorrectType indicates that type assertion failed while projecting an AMQP value. This should only be
	// encountered when there is an error with this library, or the host has altered its framing unexpectedly.
	ErrIncorrectType struct {
		Key          string
		ExpectedType reflect.Type
		ActualValue  interface{}
	}

	// ErrUnsupportedType indicates a property value could not be mapped to any AMQP scalar type.
	ErrUnsupportedType struct {
		Key    string
		GoType string
	}

	// ErrEncodeFailed wraps a property-encoding failure with the settlement operation name.
	ErrEncodeFailed struct {
		Op    string
		Cause error
	}

	// ErrAlreadyRegistered indicates a resource-factory tag was registered twice.
	ErrAlreadyRegistered struct {
		Tag string
	}

	// ErrNotRegistered indicates a resource-factory lookup for a tag with no registrant.
	ErrNotRegistered struct {
		Tag string
	}

	// ErrEmptyResponse indicates a settlement RPC response was missing a required field.
	ErrEmptyResponse struct{}

	// ErrServiceBusFactoryInitFailed wraps any error raised while bootstrapping the Service Bus factory.
	ErrServiceBusFactoryInitFailed struct {
		Cause error
	}

	// ErrBlobFactoryInitFailed wraps any error raised while bootstrapping the blob client factory.
	ErrBlobFactoryInitFailed struct {
		Cause error
	}
)

func (ErrEmptyContent) Error() string { return "binding content was empty" }

func (ErrNullContent) Error() string { return "binding data had no content" }

func (ErrLockTokenNotFound) Error() string {
	return fmt.Sprintf("lock token marker %q was not found in the binding content", lockTokenMarker)
}

func (e ErrAmqpDecodeFailed) Error() string {
	return fmt.Sprintf("failed to decode AMQP message: %v", e.Cause)
}

func (e ErrAmqpDecodeFailed) Unwrap() error { return e.Cause }

func (e ErrArgumentError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// newErrIncorrectType lets callers skip the reflect package. Provide a variable of the desired type as 'expected'.
func newErrIncorrectType(key string, expected, actual interface{}) ErrIncorrectType {
	return ErrIncorrectType{
		Key:          key,
		ExpectedType: reflect.TypeOf(expected),
		ActualValue:  actual,
	}
}

func (e ErrIncorrectType) Error() string {
	return fmt.Sprintf(
		"value at %q was expected to be of type %q but was actually of type %q",
		e.Key,
		e.ExpectedType,
		reflect.TypeOf(e.ActualValue))
}

func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("property %q has unsupported type %s", e.Key, e.GoType)
}

func (e ErrEncodeFailed) Error() string {
	return fmt.Sprintf("Failed to encode properties for %s operation: %v", e.Op, e.Cause)
}

func (e ErrEncodeFailed) Unwrap() error { return e.Cause }

func (e ErrAlreadyRegistered) Error() string {
	return fmt.Sprintf("resource factory %q is already registered", e.Tag)
}

func (e ErrNotRegistered) Error() string {
	return fmt.Sprintf("no resource factory registered for %q", e.Tag)
}

func (ErrEmptyResponse) Error() string {
	return "settlement response did not include the expected field"
}

func (e ErrServiceBusFactoryInitFailed) Error() string {
	return fmt.Sprintf("ServiceBusFactoryInitFailed: %v", e.Cause)
}

func (e ErrServiceBusFactoryInitFailed) Unwrap() error { return e.Cause }

func (e ErrBlobFactoryInitFailed) Error() string {
	return fmt.Sprintf("BlobFactoryInitFailed: %v", e.Cause)
}

func (e ErrBlobFactoryInitFailed) Unwrap() error { return e.Cause }

package messaging

import "fmt"

// ConfigError reports an incomplete transport configuration. Raised before
// any transport object is built; missing fields never reach the network.
type ConfigError struct {
	Transport string
	Field     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s transport configuration incomplete: %s is not set", e.Transport, e.Field)
}

// ValidationError reports a bad per-call argument at the transport boundary
// (malformed address, empty message fields). Never fatal to a run.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DeliveryError reports a transport-level send failure for one recipient.
// The dispatcher contains it and continues with the next recipient.
type DeliveryError struct {
	Transport string
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery to %s failed: %v", e.Transport, e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

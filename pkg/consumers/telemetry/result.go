package telemetry

// Outcome tags the result of processing one message so the transport layer's
// ack decision is an explicit contract rather than exception escape.
type Outcome int

const (
	// OutcomeProcessed means the full pipeline ran; the message is acked.
	OutcomeProcessed Outcome = iota
	// OutcomeDiscarded means the validation gate filtered the message; it is
	// acked without any side effects. This is normal control flow, not an
	// error.
	OutcomeDiscarded
	// OutcomeRetry means a persistence or unexpected failure occurred
	// mid-pipeline; the message is nak'd for redelivery. Steps already
	// executed may run again, so duplicate rows are possible.
	OutcomeRetry
)

// Discard reasons surfaced in logs and metrics.
const (
	reasonMalformedPayload = "malformed_payload"
	reasonUnknownSensor    = "unknown_sensor"
	reasonNotSubscribed    = "not_subscribed"
	reasonInactive         = "inactive"
)

// Result is the tagged outcome of one message.
type Result struct {
	Outcome Outcome
	Reason  string
	Err     error
}

func processed() Result {
	return Result{Outcome: OutcomeProcessed}
}

func discarded(reason string) Result {
	return Result{Outcome: OutcomeDiscarded, Reason: reason}
}

func retryable(err error) Result {
	return Result{Outcome: OutcomeRetry, Err: err}
}

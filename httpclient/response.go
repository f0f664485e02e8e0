package httpclient

import (
	"encoding/json"
)

// Result is either the upstream JSON value, untouched, or a Failure.
type Result struct {
	Value   json.RawMessage
	Failure *Failure
}

func Success(value json.RawMessage) Result {
	return Result{Value: value, Failure: nil}
}

func Fail(failure *Failure) Result {
	return Result{Value: nil, Failure: failure}
}

func (r Result) OK() bool {
	return r.Failure == nil
}

// JSON renders the value or the failure envelope.
func (r Result) JSON() []byte {
	if r.OK() {
		return r.Value
	}

	data, err := json.Marshal(r.Failure)
	if err != nil {
		return []byte(`{"error":"` + UnknownErrorMessage + `"}`)
	}

	return data
}

package httpclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

var (
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrReadResponse     = errors.New("httpclient: failed to read response")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)

const InvalidJSONMessage = "Invalid JSON response"

type FailureKind int

const (
	// FailureStatus is an upstream application error (status >= 400).
	FailureStatus FailureKind = iota + 1
	// FailureDecode is a response whose body is not JSON.
	FailureDecode
	// FailureTransport is a network, TLS or timeout fault.
	FailureTransport
	// FailureArgument is rejected before any request is sent.
	FailureArgument
)

// Failure is the error envelope handed back to tool callers. Its JSON form
// depends on Kind:
//
//	status:    {"error", "status", "details"}
//	decode:    {"error", "status", "raw_data"}
//	transport: {"error", "exception_type"}
//	argument:  {"error", "exception_type"}
type Failure struct {
	Kind    FailureKind
	Message string
	// UpstreamMessage is the upstream "message" value when it is not a
	// string; it replaces Message in the envelope.
	UpstreamMessage any
	Status        int
	Details       any
	RawData       string
	ExceptionType string
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) MarshalJSON() ([]byte, error) {
	envelope := map[string]any{"error": f.Message}
	if f.UpstreamMessage != nil {
		envelope["error"] = f.UpstreamMessage
	}

	switch f.Kind {
	case FailureStatus:
		envelope["status"] = f.Status
		envelope["details"] = f.Details
	case FailureDecode:
		envelope["status"] = f.Status
		envelope["raw_data"] = f.RawData
	case FailureTransport, FailureArgument:
		envelope["exception_type"] = f.ExceptionType
	}

	return json.Marshal(envelope)
}

// NewStatusFailure takes the error from a JSON object body's "message" field
// when it is present and not null, whatever its type. details keeps the whole
// body, decoded if it is JSON.
func NewStatusFailure(status int, body []byte) *Failure {
	failure := &Failure{ //nolint:exhaustruct
		Kind:    FailureStatus,
		Message: UnknownErrorMessage,
		Status:  status,
		Details: string(body),
	}

	if !json.Valid(body) {
		return failure
	}

	failure.Details = json.RawMessage(body)

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return failure
	}

	switch message := fields["message"].(type) {
	case nil:
	case string:
		failure.Message = message
	default:
		failure.Message = fmt.Sprint(message)
		failure.UpstreamMessage = message
	}

	return failure
}

func NewDecodeFailure(status int, body []byte) *Failure {
	return &Failure{ //nolint:exhaustruct
		Kind:    FailureDecode,
		Message: InvalidJSONMessage,
		Status:  status,
		RawData: string(body),
	}
}

func NewTransportFailure(err error) *Failure {
	return &Failure{ //nolint:exhaustruct
		Kind:          FailureTransport,
		Message:       err.Error(),
		ExceptionType: Classify(err),
	}
}

func NewArgumentFailure(exceptionType string, err error) *Failure {
	return &Failure{ //nolint:exhaustruct
		Kind:          FailureArgument,
		Message:       err.Error(),
		ExceptionType: exceptionType,
	}
}

// Classify names the kind of fault behind a failed request.
func Classify(err error) string {
	var (
		dnsErr       *net.DNSError
		certErr      *tls.CertificateVerificationError
		recordErr    tls.RecordHeaderError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		netErr       net.Error
	)

	switch {
	case errors.Is(err, ErrResponseTooLarge):
		return "ResponseTooLargeError"
	case errors.Is(err, ErrEncodeBody):
		return "EncodeError"
	case errors.Is(err, ErrCreateRequest):
		return "InvalidRequestError"
	case errors.Is(err, context.Canceled):
		return "CanceledError"
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return "TimeoutError"
	case errors.As(err, &dnsErr):
		return "DNSError"
	case errors.As(err, &certErr),
		errors.As(err, &recordErr),
		errors.As(err, &authorityErr),
		errors.As(err, &hostnameErr):
		return "TLSError"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "ConnectionRefusedError"
	case errors.Is(err, syscall.ECONNRESET):
		return "ConnectionResetError"
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "RemoteDisconnectedError"
	default:
		return "TransportError"
	}
}

package hostmock

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Config represents the configuration for creating a Mock instance. Blank
// Expected fields match anything.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response builds the bytes returned for an accepted call. It receives
	// the call's payload so replies can echo request fields.
	Response func(payload []byte) []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// Call records one host call observed by the mock.
type Call struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Mock simulates the waPC host. It is safe for concurrent use, since plugin
// components may call the host from their own goroutines.
type Mock struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{cfg: config}, nil
}

// HostCall simulates a host call, validating inputs and returning a response or error.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.record(Call{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    append([]byte(nil), payload...),
	})

	if m.cfg.Fail {
		if m.cfg.Error != nil {
			return nil, m.cfg.Error
		}
		return nil, ErrOperationFailed
	}

	if err := expect(ErrUnexpectedNamespace, "namespace", m.cfg.ExpectedNamespace, namespace); err != nil {
		return nil, err
	}
	if err := expect(ErrUnexpectedCapability, "capability", m.cfg.ExpectedCapability, capability); err != nil {
		return nil, err
	}
	if err := expect(ErrUnexpectedFunction, "function", m.cfg.ExpectedFunction, function); err != nil {
		return nil, err
	}

	if m.cfg.PayloadValidator != nil {
		if err := m.cfg.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.cfg.Response != nil {
		return m.cfg.Response(payload), nil
	}

	return nil, nil
}

// Calls returns a copy of every call observed so far, in arrival order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsTo returns the recorded calls for one capability and function.
func (m *Mock) CallsTo(capability, function string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Capability == capability && c.Function == function {
			out = append(out, c)
		}
	}
	return out
}

func (m *Mock) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

func expect(sentinel error, field, want, got string) error {
	if want == "" || want == got {
		return nil
	}
	return fmt.Errorf("%w: expected %s %s, got %s", sentinel, field, want, got)
}

package mock

import (
	"fmt"
	"sync"

	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/ledger"
)

// Config configures the mock builder.
type Config struct {
	// Dispatch is returned from BuildGetTxnRequest. Anything other than
	// Success means the continuation is never run.
	Dispatch nullpay.Code

	// Code is reported to the continuation.
	Code nullpay.Code

	// Payload is reported to the continuation. When empty a GET_TXN request
	// is rendered from the call arguments, see Request.
	Payload string

	// Gate, when non-nil, holds every continuation until it is closed.
	Gate <-chan struct{}
}

// Call records one build request.
type Call struct {
	Handle       nullpay.CommandHandle
	SubmitterDID string
	SeqNo        int32
}

// Builder implements ledger.Builder without a host. Continuations always run
// on a new goroutine, like the real builder.
type Builder struct {
	cfg Config

	mu    sync.Mutex
	calls []Call
	wg    sync.WaitGroup
}

var _ ledger.Builder = (*Builder)(nil)

// New creates a mock builder.
func New(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Request renders the GET_TXN request the mock reports by default.
func Request(submitterDID string, seqNo int32) string {
	return fmt.Sprintf(`{"reqId":1,"identifier":%q,"operation":{"type":"3","data":%d},"protocolVersion":2}`, submitterDID, seqNo)
}

// BuildGetTxnRequest implements ledger.Builder.
func (b *Builder) BuildGetTxnRequest(handle nullpay.CommandHandle, submitterDID string, seqNo int32, cb nullpay.Callback) nullpay.Code {
	b.mu.Lock()
	b.calls = append(b.calls, Call{Handle: handle, SubmitterDID: submitterDID, SeqNo: seqNo})
	b.mu.Unlock()

	if b.cfg.Dispatch != nullpay.Success {
		return b.cfg.Dispatch
	}

	payload := b.cfg.Payload
	if payload == "" {
		payload = Request(submitterDID, seqNo)
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if b.cfg.Gate != nil {
			<-b.cfg.Gate
		}
		cb(handle, b.cfg.Code, payload)
	}()
	return nullpay.Success
}

// Calls returns a copy of the recorded build requests.
func (b *Builder) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// Wait blocks until every dispatched continuation has run.
func (b *Builder) Wait() { b.wg.Wait() }

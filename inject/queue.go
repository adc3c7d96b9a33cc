package inject

import (
	"sync"

	"github.com/tarmac-project/nullpay"
)

// Response is a scripted operation outcome.
type Response struct {
	// Code is the result code reported to the operation's callback.
	Code nullpay.Code

	// Payload is the response body reported to the operation's callback.
	Payload string
}

// Queue holds scripted responses for one operation kind, oldest first.
type Queue struct {
	mu      sync.Mutex
	pending []Response
}

// Inject appends a response to the tail of the queue.
func (q *Queue) Inject(code nullpay.Code, payload string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, Response{Code: code, Payload: payload})
}

// InjectBytes appends a response whose payload is copied out of b, so the
// caller may reuse b once InjectBytes returns.
func (q *Queue) InjectBytes(code nullpay.Code, b []byte) {
	q.Inject(code, string(b))
}

// Clear drops every pending response.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
}

// Next removes and returns the oldest pending response. The boolean is false
// when nothing is queued.
func (q *Queue) Next() (Response, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return Response{}, false
	}
	r := q.pending[0]
	q.pending[0] = Response{}
	q.pending = q.pending[1:]
	return r, true
}

// Len reports the number of pending responses.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

package inject

import (
	"sync"

	"github.com/tarmac-project/nullpay"
)

// Registry owns one Queue per operation kind. Queues are created on first
// use and live as long as the Registry.
type Registry struct {
	mu     sync.Mutex
	queues map[nullpay.Kind]*Queue
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{queues: make(map[nullpay.Kind]*Queue)}
}

// Queue returns the queue for kind, creating it if needed.
func (r *Registry) Queue(kind nullpay.Kind) *Queue {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.queues == nil {
		r.queues = make(map[nullpay.Kind]*Queue)
	}
	q, ok := r.queues[kind]
	if !ok {
		q = &Queue{}
		r.queues[kind] = q
	}
	return q
}

// Inject is shorthand for r.Queue(kind).Inject(code, payload).
func (r *Registry) Inject(kind nullpay.Kind, code nullpay.Code, payload string) {
	r.Queue(kind).Inject(code, payload)
}

// Clear empties every queue created so far.
func (r *Registry) Clear() {
	r.mu.Lock()
	queues := make([]*Queue, 0, len(r.queues))
	for _, q := range r.queues {
		queues = append(queues, q)
	}
	r.mu.Unlock()

	for _, q := range queues {
		q.Clear()
	}
}

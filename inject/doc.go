/*
Package inject scripts the outcome of upcoming payment operations.

Each operation kind owns a FIFO Queue of pre-recorded responses. Before an
operation runs its normal logic it takes the head of its queue; when a
response is waiting, that response is delivered instead and the normal logic
is skipped. An empty queue means the operation behaves normally.

Queues live in a Registry, which is the test-harness context handed to the
payment plugin. Creating one Registry per test keeps scripted state scoped to
that test; Clear resets every queue at once.

Quick start

	reg := inject.NewRegistry()
	reg.Queue(nullpay.ParseGetTxnFeesResponse).Inject(nullpay.Success, `{}`)

	p, _ := payment.New(payment.Config{Registry: reg, Builder: b})
	// The next ParseGetTxnFeesResponse call reports (Success, "{}").

All methods are safe for concurrent use.
*/
package inject

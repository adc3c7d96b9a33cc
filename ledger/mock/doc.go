/*
Package mock provides a host-free implementation of ledger.Builder.

The mock records every build request and completes the continuation on a
separate goroutine with the configured code and payload. A Gate channel lets
tests hold continuations back to observe the window between dispatch and
completion.

	b := mock.New(mock.Config{Payload: "X"})
	p, _ := payment.New(payment.Config{Builder: b})
	p.BuildMintRequest(1, 0, "did", "[]", "", cb)
	b.Wait()
*/
package mock

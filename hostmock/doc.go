/*
Package hostmock provides a pretend waPC host for plugin tests.

The null payment plugin talks to its host for three things: building ledger
requests, emitting log entries and recording metrics. hostmock stands in for
that host so tests can check exactly what the plugin sends without a real
runtime.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedCapability: "ledger",
	  ExpectedFunction:   "build_get_txn_request",
	  Response: func(payload []byte) []byte {
	    // Encode a reply for the plugin here
	    return reply
	  },
	})

	b, _ := ledger.New(ledger.Config{HostCall: m.HostCall})

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise HostCall enforces the Expected fields that are set, runs
    PayloadValidator when provided and returns Response(payload) when set.
  - Every call is recorded, including failed ones. Calls and CallsTo return
    snapshots that are safe to read while the plugin keeps calling.
*/
package hostmock

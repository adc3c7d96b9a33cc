/*
Package ledger reaches the host library's ledger-request builder.

The null payment plugin never builds ledger transactions itself. For the few
operations that must hand back a real ledger request it asks the host to
build a GET_TXN request instead, through the Builder interface.

HostBuilder implements Builder over waPC: it sends a protobuf Struct
{submitter_did, seq_no} to the "ledger" capability's build_get_txn_request
function on a separate goroutine and completes the caller's callback with
the host's {code, request} reply. Host codes are passed through untouched.
If the host cannot be reached or its reply cannot be decoded the callback
receives CommonInvalidState with an empty payload.

Tests use the mock subpackage or inject Config.HostCall.
*/
package ledger

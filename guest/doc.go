/*
Package guest exposes the null payment plugin to its host runtime.

New registers one waPC guest function per operation kind, named after the
kind (e.g. "parse_get_txn_fees_response"). Each function takes a protobuf
Struct of arguments keyed by snake_case argument name and returns a protobuf
Struct {code, response}. Because waPC calls are synchronous, functions backed
by delegating operations block until the ledger builder completes.

Missing arguments read as empty strings or zero handles; the plugin does not
validate input. Only undecodable payloads produce an error.
*/
package guest

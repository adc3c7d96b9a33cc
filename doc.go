/*
Package nullpay holds the shared vocabulary of the null payment method
plugin: result codes, correlation handles, the completion callback type and
the set of operation kinds.

The plugin answers a ledger client library's payment operations with canned
or echoed responses so integration tests can run without a real payment
backend. The packages below build on this one:

  - inject: per-operation queues of scripted responses for tests.
  - payment: the Plugin with one method per operation kind.
  - ledger: the host ledger-request builder the plugin delegates to.
  - guest: registers the operations as waPC functions with the host.

RuntimeConfig carries the waPC namespace shared by every host-facing client.
DefaultNamespace is used when a namespace is not explicitly provided.
*/
package nullpay

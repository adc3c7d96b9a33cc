/*
Package logging offers a client for emitting log entries from the null
payment plugin to the host runtime.

The client exposes printf-style methods for the usual levels (Info, Warn,
Error, Debug, Trace). Each entry becomes one waPC call on the "logging"
capability, named after its level. Entries below Config.Level are dropped
before reaching the host, and host failures are ignored.
*/
package logging

/*
Package diag provides side-effect-only diagnostics for QueryWatch.

Log output is structured (log/slog) and verbosity is gated by two
environment variables:

	QUERYWATCH_DEBUG=1   enable debug-level diagnostics
	QUERYWATCH_TRACE=1   enable trace-level diagnostics (implies debug)

Warnings (ReportIssue) and errors are always emitted. Nothing in this
package is part of the functional contract: key types swallow fetch
errors and report them here instead of surfacing them to subscribers.

Hosts can install their own logger:

	diag.SetLogger(slog.Default().With("lib", "querywatch"))
*/
package diag

// Package client provides the `siphon` command-line client.
//
// The CLI talks to the siphon HTTP API to perform queue operations from a
// terminal. It is primarily intended for developers and operators.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it reads
// --api, then the SIPHON_API environment variable, and defaults to
// http://127.0.0.1:8080.
//
// Usage
//
//	siphon queue create email
//
//	siphon queue enqueue email \
//	    --key order-1234 \
//	    --field subject=Welcome \
//	    --field to=a@example.com
//
//	# --key omitted: a random key is generated
//	siphon queue enqueue email --field subject=Hello
//
//	siphon queue dequeue email
//
//	siphon queue list
//
// Notes
//
//   - dequeue prints the popped job, {"status":"empty"} when there is
//     nothing pending, or {"status":"partial"} when a key was consumed
//     whose fields were missing.
//   - enqueue accepts repeated --field key=value flags.
package client

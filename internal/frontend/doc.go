// Package frontend implements the TCP front-end that answers one request head
// per connection with a fixed response.
//
// # Connection Handling
//
// Handler.Handle reads into a buffer of BufferSize bytes (8096 by default)
// and re-parses the buffered bytes after every read, with at most MaxHeaders
// (16) header fields:
//
//	┌─────────────────────────┬──────────────────────────────────────────┐
//	│ Parse outcome           │ Action                                   │
//	├─────────────────────────┼──────────────────────────────────────────┤
//	│ complete                │ write "HTTP/1.1 200 OK\r\n", close       │
//	│ error                   │ write "HTTP/1.1 400 Bad Request\r\n\r\n" │
//	│ partial                 │ read again                               │
//	│ partial, buffer full    │ write the 400 response, close            │
//	│ read error / EOF        │ close without answering                  │
//	│ ReadTimeout elapsed     │ close without answering                  │
//	└─────────────────────────┴──────────────────────────────────────────┘
//
// The response bytes are fixed and must be reproduced exactly. ReadTimeout
// (10s by default) bounds the whole request head, so a silent client cannot
// hold a pool worker or delay shutdown forever.
//
// # Strategies
//
// Server accepts connections with one of three interchangeable strategies,
// chosen by configuration:
//
//	pool     one accept loop ──► threadpool.Pool.Submit(handle)
//	thread   one accept loop ──► go handle(conn)
//	percore  N accept loops  ──► handle(conn) inline, N = NumCPU
//
// The pool strategy only needs the Submit method of the pool and never joins
// the returned handles: results are dropped into their one-slot buffers.
//
// # Accept Errors
//
// Transient Accept errors are retried with exponential backoff. A closed
// listener or a cancelled context ends the loop without error.
package frontend

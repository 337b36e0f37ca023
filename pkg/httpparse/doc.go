// Package httpparse is a small incremental parser for HTTP/1.x request heads.
//
// It only answers one question: does the buffer hold a whole, well-formed
// request head yet? Callers read from a connection, call Parse after every
// read and act on the outcome:
//
//	┌──────────────┬──────────────────────────────────────────────┐
//	│ Outcome      │ Meaning                                      │
//	├──────────────┼──────────────────────────────────────────────┤
//	│ Complete(n)  │ the first n bytes are a full request head    │
//	│ Partial      │ well-formed so far, more bytes are needed    │
//	│ error        │ the bytes can never become a valid head      │
//	└──────────────┴──────────────────────────────────────────────┘
//
// Bodies are not parsed. The number of header fields is capped by the
// caller; going over the cap is reported as ErrTooManyHeaders.
package httpparse

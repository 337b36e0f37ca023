package frontend

import (
	"fmt"
	"net"
	"time"

	srvErrors "github.com/tupyy/rrpool/pkg/errors"
	"github.com/tupyy/rrpool/pkg/httpparse"
)

const (
	DefaultPort        = 8080
	DefaultBufferSize  = 8096
	DefaultMaxHeaders  = 16
	DefaultReadTimeout = 10 * time.Second
)

// Fixed responses. They are part of the wire contract and must not change.
var (
	ResponseOK         = []byte("HTTP/1.1 200 OK\r\n")
	ResponseBadRequest = []byte("HTTP/1.1 400 Bad Request\r\n\r\n")
)

// Handler answers a single request head per connection.
type Handler struct {
	bufferSize  int
	maxHeaders  int
	readTimeout time.Duration
}

// NewHandler returns a handler. A readTimeout of zero lets clients take as
// long as they want to send their request head.
func NewHandler(bufferSize, maxHeaders int, readTimeout time.Duration) *Handler {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if maxHeaders <= 0 {
		maxHeaders = DefaultMaxHeaders
	}
	return &Handler{bufferSize: bufferSize, maxHeaders: maxHeaders, readTimeout: readTimeout}
}

// Handle reads from conn until the buffered bytes form a complete request
// head or can no longer become one, answers and closes conn.
// A read failure, including the read timeout expiring, closes conn without
// any answer.
func (h *Handler) Handle(conn net.Conn) error {
	defer conn.Close()

	if h.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(h.readTimeout)); err != nil {
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
	}

	buf := make([]byte, h.bufferSize)
	n := 0
	for {
		if n == len(buf) {
			if err := reply(conn, ResponseBadRequest); err != nil {
				return err
			}
			return srvErrors.NewRequestTooLargeError(len(buf))
		}

		read, readErr := conn.Read(buf[n:])
		n += read

		if read > 0 {
			status, err := httpparse.Parse(buf[:n], h.maxHeaders)
			if err != nil {
				return reply(conn, ResponseBadRequest)
			}
			if status.IsComplete() {
				return reply(conn, ResponseOK)
			}
		}

		if readErr != nil {
			return fmt.Errorf("failed to read request: %w", readErr)
		}
	}
}

func reply(conn net.Conn, resp []byte) error {
	if _, err := conn.Write(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

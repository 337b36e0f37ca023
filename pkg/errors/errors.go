package errors

import (
	"errors"
	"fmt"
)

// InvalidWorkerCountError is returned when a pool is built with no workers.
type InvalidWorkerCountError struct {
	count int
}

func NewInvalidWorkerCountError(count int) *InvalidWorkerCountError {
	return &InvalidWorkerCountError{count: count}
}

func (e *InvalidWorkerCountError) Error() string {
	return fmt.Sprintf("invalid worker count %d: must be greater than 0", e.count)
}

func IsInvalidWorkerCountError(err error) bool {
	var e *InvalidWorkerCountError
	return errors.As(err, &e)
}

// QueueClosedError means a task was dispatched to a worker whose queue is
// already shut down. It only happens when Submit races or follows Close.
type QueueClosedError struct {
	worker int
}

func NewQueueClosedError(worker int) *QueueClosedError {
	return &QueueClosedError{worker: worker}
}

func (e *QueueClosedError) Error() string {
	return fmt.Sprintf("queue of worker %d is closed", e.worker)
}

func (e *QueueClosedError) Worker() int {
	return e.worker
}

func IsQueueClosedError(err error) bool {
	var e *QueueClosedError
	return errors.As(err, &e)
}

// TaskPanicError carries a panic recovered while a worker was running a task.
type TaskPanicError struct {
	Value any
	Stack []byte
}

func NewTaskPanicError(value any, stack []byte) *TaskPanicError {
	return &TaskPanicError{Value: value, Stack: stack}
}

func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *TaskPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func IsTaskPanicError(err error) bool {
	var e *TaskPanicError
	return errors.As(err, &e)
}

// TaskExitedError is reported when a task ended its goroutine with
// runtime.Goexit instead of returning.
type TaskExitedError struct {
	worker int
}

func NewTaskExitedError(worker int) *TaskExitedError {
	return &TaskExitedError{worker: worker}
}

func (e *TaskExitedError) Error() string {
	return fmt.Sprintf("task exited its goroutine on worker %d without returning", e.worker)
}

func IsTaskExitedError(err error) bool {
	var e *TaskExitedError
	return errors.As(err, &e)
}

// RequestTooLargeError is returned when a request head does not fit in the
// connection read buffer.
type RequestTooLargeError struct {
	limit int
}

func NewRequestTooLargeError(limit int) *RequestTooLargeError {
	return &RequestTooLargeError{limit: limit}
}

func (e *RequestTooLargeError) Error() string {
	return fmt.Sprintf("request head exceeds %d bytes", e.limit)
}

func IsRequestTooLargeError(err error) bool {
	var e *RequestTooLargeError
	return errors.As(err, &e)
}

// InvalidConfigurationError wraps a configuration validation failure.
type InvalidConfigurationError struct {
	err error
}

func NewInvalidConfigurationError(err error) *InvalidConfigurationError {
	return &InvalidConfigurationError{err: err}
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %v", e.err)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.err
}

func IsInvalidConfigurationError(err error) bool {
	var e *InvalidConfigurationError
	return errors.As(err, &e)
}

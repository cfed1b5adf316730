package chunkz

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfiguration is returned when a component is built with a
	// window size below one.
	ErrInvalidConfiguration = errors.New("chunkz: invalid configuration")

	// ErrNilSource is returned when an adapter is built without a source.
	ErrNilSource = errors.New("chunkz: nil source")
)

// ConfigError reports a rejected construction parameter.
type ConfigError struct {
	// Component names the constructor that rejected the value.
	Component string

	// Param names the rejected parameter, e.g. "size" or "interval".
	Param string

	// Value is the rejected value.
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s must be positive, got %v",
		ErrInvalidConfiguration, e.Component, e.Param, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration).
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

func validateSize(component string, size int) error {
	if size < 1 {
		return &ConfigError{Component: component, Param: "size", Value: size}
	}
	return nil
}

func validateInterval(component string, interval time.Duration) error {
	if interval <= 0 {
		return &ConfigError{Component: component, Param: "interval", Value: interval}
	}
	return nil
}

// StreamError represents an error that occurred while producing or processing
// an item. It captures the item (or position) involved and the error itself.
//
//nolint:govet // fieldalignment: struct layout optimized for readability over memory
type StreamError[T any] struct {
	// Item is the item, or source position, involved in the failure.
	Item T

	// Err is the underlying error.
	Err error

	// ProcessorName identifies which component generated the error.
	ProcessorName string

	// Timestamp records when the error occurred.
	Timestamp time.Time
}

// NewStreamError creates a new StreamError stamped with RealClock.
func NewStreamError[T any](item T, err error, processorName string) *StreamError[T] {
	return &StreamError[T]{
		Item:          item,
		Err:           err,
		ProcessorName: processorName,
		Timestamp:     RealClock.Now(),
	}
}

// String returns a human-readable representation of the error.
func (se *StreamError[T]) String() string {
	return fmt.Sprintf("StreamError[%s]: %v (item: %v, time: %s)",
		se.ProcessorName, se.Err, se.Item, se.Timestamp.Format(time.RFC3339))
}

// Unwrap returns the underlying error, enabling error wrapping chains.
func (se *StreamError[T]) Unwrap() error {
	return se.Err
}

// Error implements the error interface.
func (se *StreamError[T]) Error() string {
	return se.String()
}

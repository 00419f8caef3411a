/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnknownLabel is returned when a label name or ordinal falls outside the closed enumeration
	ErrUnknownLabel = errors.New("unknown label")

	// ErrNotRegistered is returned when a callable has no registry entry
	ErrNotRegistered = errors.New("callable not registered")

	// ErrInvalidArgument is returned when an argument fails validation, e.g. a non-callable value
	ErrInvalidArgument = errors.New("invalid argument")
)

// UnknownLabelError represents a label name or ordinal outside the closed enumeration
type UnknownLabelError struct {
	Name    string
	Ordinal int
}

func (e *UnknownLabelError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown label %q", e.Name)
	}
	return fmt.Sprintf("unknown label ordinal %d", e.Ordinal)
}

func (e *UnknownLabelError) Is(target error) bool {
	return target == ErrUnknownLabel
}

// NotRegisteredError represents a lookup, describe or delete on a callable with no registry entry
type NotRegisteredError struct {
	Callable string
}

func (e *NotRegisteredError) Error() string {
	if e.Callable != "" {
		return fmt.Sprintf("callable (%s) not in registry", e.Callable)
	}
	return "callable not in registry"
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// InvalidArgumentError represents an argument validation failure
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Helper functions for creating errors

// NewUnknownLabelError creates a new UnknownLabelError for a label name
func NewUnknownLabelError(name string) error {
	return &UnknownLabelError{Name: name}
}

// NewUnknownOrdinalError creates a new UnknownLabelError for a bit position
func NewUnknownOrdinalError(ordinal int) error {
	return &UnknownLabelError{Ordinal: ordinal}
}

// NewNotRegisteredError creates a new NotRegisteredError
func NewNotRegisteredError(callable string) error {
	return &NotRegisteredError{Callable: callable}
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(reason string) error {
	return &InvalidArgumentError{Reason: reason}
}

// IsUnknownLabel checks if an error is an unknown label error
func IsUnknownLabel(err error) bool {
	return errors.Is(err, ErrUnknownLabel)
}

// IsNotRegistered checks if an error is a not registered error
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

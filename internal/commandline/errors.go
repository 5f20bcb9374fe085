// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commandline

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is matched by every command-line argument error.
	ErrArgument = errors.New("invalid command-line argument")
	// ErrArgumentProperty is matched by errors that concern a property within an argument value.
	// Such errors also match ErrArgument.
	ErrArgumentProperty = errors.New("invalid command-line argument property")
)

// Kind classifies an ArgumentError.
type Kind int

const (
	// KindNotRecognized means the argument or property name is unknown.
	KindNotRecognized Kind = iota
	// KindAlreadyDefined means the argument or property was given more than once.
	KindAlreadyDefined
	// KindInvalidValue means a property value could not be mapped to its type.
	KindInvalidValue
	// KindRequired means a required argument is missing.
	KindRequired
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotRecognized:
		return "NotRecognized"
	case KindAlreadyDefined:
		return "AlreadyDefined"
	case KindInvalidValue:
		return "InvalidValue"
	case KindRequired:
		return "Required"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ArgumentError reports a command line that cannot be turned into a CommandLine.
// Property names the property when the error concerns a property of a structured
// argument, see IsProperty. Value holds the offending value for KindInvalidValue.
type ArgumentError struct {
	Kind     Kind
	Argument string
	Property string
	Value    string

	property bool
}

// IsProperty reports whether the error concerns a property rather than the argument.
// The property name itself may be empty, e.g. for `-metadata:,`.
func (e *ArgumentError) IsProperty() bool {
	return e.property || e.Property != ""
}

// Message returns the human readable description without the name details.
func (e *ArgumentError) Message() string {
	if !e.IsProperty() {
		switch e.Kind {
		case KindNotRecognized:
			return fmt.Sprintf("The argument '%s' is not recognized.", e.Argument)
		case KindAlreadyDefined:
			return fmt.Sprintf("The argument '%s' has already been defined.", e.Argument)
		case KindRequired:
			return fmt.Sprintf("The argument '%s' is required.", e.Argument)
		default:
			return fmt.Sprintf("The argument '%s' is not valid.", e.Argument)
		}
	}

	switch e.Kind {
	case KindNotRecognized:
		return fmt.Sprintf("The property '%s' is not recognized.", e.Property)
	case KindAlreadyDefined:
		return fmt.Sprintf("The property '%s' has already been defined.", e.Property)
	case KindInvalidValue:
		return fmt.Sprintf("The value '%s' is not a recognized value for property '%s'.", e.Value, e.Property)
	default:
		return fmt.Sprintf("The property '%s' is not valid.", e.Property)
	}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if !e.IsProperty() {
		return fmt.Sprintf("%s: %s", e.Argument, e.Message())
	}

	return fmt.Sprintf("%s: %s: %s", e.Argument, e.Property, e.Message())
}

// Unwrap exposes the sentinel errors so that errors.Is can be used.
func (e *ArgumentError) Unwrap() []error {
	if !e.IsProperty() {
		return []error{ErrArgument}
	}

	return []error{ErrArgumentProperty, ErrArgument}
}

func argumentNotRecognized(argument string) error {
	return &ArgumentError{Kind: KindNotRecognized, Argument: argument}
}

func argumentAlreadyDefined(argument string) error {
	return &ArgumentError{Kind: KindAlreadyDefined, Argument: argument}
}

func propertyNotRecognized(argument, property string) error {
	return &ArgumentError{Kind: KindNotRecognized, Argument: argument, Property: property, property: true}
}

func propertyAlreadyDefined(argument, property string) error {
	return &ArgumentError{Kind: KindAlreadyDefined, Argument: argument, Property: property, property: true}
}

func propertyInvalidValue(argument, property, value string) error {
	return &ArgumentError{Kind: KindInvalidValue, Argument: argument, Property: property, Value: value, property: true}
}

// NewRequiredError reports a missing required argument.
// The parser itself has no required arguments. Callers that do use this.
func NewRequiredError(argument string) error {
	return &ArgumentError{Kind: KindRequired, Argument: argument}
}

// Package domain holds the types shared by the clients, normalizers and router.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Arg is one named command argument as declared by the command schema.
type Arg struct {
	Value    string
	Required bool
}

// CommandInvocation is a parsed command, created per inbound message.
type CommandInvocation struct {
	ID         uuid.UUID
	Command    string
	Subcommand string
	Args       map[string]Arg
}

// NewInvocation creates an invocation with a fresh correlation ID.
func NewInvocation(command, subcommand string, args map[string]Arg) CommandInvocation {
	if args == nil {
		args = map[string]Arg{}
	}
	return CommandInvocation{
		ID:         uuid.New(),
		Command:    command,
		Subcommand: subcommand,
		Args:       args,
	}
}

// String returns the trimmed value of a named argument ("" if absent).
func (c CommandInvocation) String(name string) string {
	return strings.TrimSpace(c.Args[name].Value)
}

// Require returns the value of a required argument, failing closed with a
// validation error when it is absent or blank.
func (c CommandInvocation) Require(name string) (string, error) {
	v := c.String(name)
	if v == "" {
		return "", NewValidationError(name)
	}
	return v, nil
}

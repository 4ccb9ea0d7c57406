package inspect

import "errors"

var (
	// ErrLoopStopped is returned by Loop.Do after the loop has stopped.
	ErrLoopStopped = errors.New("inspect: loop stopped")

	// ErrNodeNotFound is returned when a command path addresses no node.
	ErrNodeNotFound = errors.New("inspect: node not found")

	// ErrUnknownCommand is returned for commands with an unknown type.
	ErrUnknownCommand = errors.New("inspect: unknown command")
)

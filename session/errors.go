// SPDX-License-Identifier: MIT
package session

import "github.com/cockroachdb/errors"

// Sentinel errors returned by Exec.
var (
	// ErrUnknownCommand indicates the first token names no command.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrUsage indicates a wrong number of arguments.
	ErrUsage = errors.New("session: wrong arguments")

	// ErrBadArgument indicates an argument that does not parse.
	ErrBadArgument = errors.New("session: bad argument")

	// ErrSameNode indicates a path query whose endpoints coincide.
	ErrSameNode = errors.New("session: start and end node are the same")

	// ErrUnknownKind indicates a `gen` fixture kind that does not exist.
	ErrUnknownKind = errors.New("session: unknown fixture kind")
)

// SPDX-License-Identifier: MIT

// Package session is the editor boundary of pathboard: it owns one
// *core.Graph and interprets line commands against it.
//
// A command line is tokenized with shell quoting rules, so labels may contain
// spaces when quoted:
//
//	add "Main Street" 120 80
//	connect 0 1 7
//	path 0 1
//
// Node and edge arguments are decimal identities as printed by `nodes` and
// `edges`. Exec returns the command error; Run reports it on the output and
// keeps reading, so a bad command never ends a session.
//
// Commands (see `help`):
//
//	add [label] [x y]        connect A B [w]       weight E w
//	label N text             move N x y            color N #rrggbb
//	at x y                   rm N                  rm-edge E
//	path A B                 dist S                reach S [maxw]
//	components               mst [root]            reset
//	nodes                    edges                 gen KIND [args]
//	stats                    help
//
// A Session is not safe for concurrent use.
package session

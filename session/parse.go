// SPDX-License-Identifier: MIT
package session

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pathboard/core"
)

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%s: %q is not an integer", name, s)
	}

	return v, nil
}

func parseNodeID(s string) (core.NodeID, error) {
	v, err := parseInt("node", s)

	return core.NodeID(v), err
}

func parseEdgeID(s string) (core.EdgeID, error) {
	v, err := parseInt("edge", s)

	return core.EdgeID(v), err
}

func parseWeight(s string) (int64, error) {
	w, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "weight: %q is not an integer", s)
	}

	return w, nil
}

func parsePosition(xs, ys string) (core.Position, error) {
	x, err := parseInt("x", xs)
	if err != nil {
		return core.Position{}, err
	}
	y, err := parseInt("y", ys)
	if err != nil {
		return core.Position{}, err
	}

	return core.Position{X: x, Y: y}, nil
}

// parseColor accepts "#rrggbb" or "rrggbb".
func parseColor(s string) (core.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return core.Color{}, errors.Wrapf(ErrBadArgument, "color: %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.Color{}, errors.Wrapf(ErrBadArgument, "color: %q is not #rrggbb", s)
	}

	return core.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func parseProbability(s string) (float64, error) {
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "probability: %q is not a number", s)
	}

	return p, nil
}

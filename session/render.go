// SPDX-License-Identifier: MIT
package session

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/pathboard/core"
)

// infinity is how unreachable distances are shown.
const infinity = "∞"

// table renders rows under header with pterm and writes the result.
func (s *Session) table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	s.printf("%s", out)

	return nil
}

// nodeName renders a node as "id(label)", or just the id once it is gone.
func (s *Session) nodeName(id core.NodeID) string {
	n, err := s.graph.Node(id)
	if err != nil {
		return strconv.Itoa(int(id))
	}

	return strconv.Itoa(int(id)) + "(" + n.Label + ")"
}

// chain renders a node sequence as "a -> b -> c".
func (s *Session) chain(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = s.nodeName(id)
	}

	return strings.Join(parts, " -> ")
}

func formatDistance(d int64) string {
	if d == core.Infinity {
		return infinity
	}

	return strconv.FormatInt(d, 10)
}

// SPDX-License-Identifier: MIT
package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathboard/bfs"
	"github.com/katalvlaran/pathboard/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain.
func BenchmarkBFS_Chain(b *testing.B) {
	g, ids := chain(b, 10000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, ids[0])
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of 1023 nodes.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const nodeCount = (1 << 10) - 1
	g := core.NewGraph()
	for i := 0; i < nodeCount; i++ {
		g.AddNode("", core.Position{})
	}
	for i := 0; 2*i+2 < nodeCount; i++ {
		_, _ = g.AddEdge(core.NodeID(i), core.NodeID(2*i+1), 1)
		_, _ = g.AddEdge(core.NodeID(i), core.NodeID(2*i+2), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// Copyright 2025-2026 The Catalyst-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tree

import (
	"fmt"
	"strings"
)

// TreeString renders the tree in depth-first order as indented ASCII, one
// node per line. A node that is the last child of its parent is marked with
// "+- ", other children with "- " behind a ":" continuation drawn for every
// ancestor that still has siblings below.
func TreeString(n Node) string {
	return strings.Join(treeLines(n, 0, "", false, nil), "\n")
}

// NumberedTreeString renders the same lines as TreeString, each prefixed
// with its 1-based position in the traversal, zero-padded to two digits.
func NumberedTreeString(n Node) string {
	lines := treeLines(n, 0, "", false, nil)
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%02d %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}

func treeLines(n Node, depth int, prefix string, isLastChild bool, lines []string) []string {
	marker := ""
	if depth > 0 {
		if isLastChild {
			marker = "+- "
		} else {
			marker = "- "
		}
	}
	lines = append(lines, prefix+marker+n.NodeName())
	children := n.Children()
	pad := strings.Repeat(" ", len(marker))
	for i, child := range children {
		last := i == len(children)-1
		// last children close their branch, no continuation line below
		sym := ":"
		if last {
			sym = ""
		}
		lines = treeLines(child, depth+1, prefix+pad+sym, last, lines)
	}
	return lines
}

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

package rule

// Strategy indicates the maximum number of times a batch may execute.
// A batch stops earlier when it reaches a fixed point.
type Strategy struct {
	maxIterations int
}

// Once runs the batch a single time regardless of further change.
var Once = Strategy{maxIterations: 1}

// FixedPoint runs the batch until convergence, capped at maxIterations.
// maxIterations must be positive.
func FixedPoint(maxIterations int) Strategy {
	return Strategy{maxIterations: maxIterations}
}

// NumIterations returns the iteration cap associated with the strategy.
func (s Strategy) NumIterations() int {
	return s.maxIterations
}

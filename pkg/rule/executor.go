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

import (
	"fmt"

	"github.com/catalyst-go/catalyst/pkg/errorx"
	"github.com/catalyst-go/catalyst/pkg/timex"
)

// IntegrityError reports that applying a specific rule within a specific
// batch left the plan structurally broken. It aborts the whole run; no
// partial plan is returned.
type IntegrityError struct {
	Rule  string
	Batch string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("after applying rule %s in batch %s, the structural integrity of the plan is broken", e.Rule, e.Batch)
}

func (e *IntegrityError) Code() errorx.ErrorCode {
	return errorx.PlanError
}

// RuleExecutor drives sequential batches of rules over a plan. Batches are
// executed serially in declaration order under their strategies; within
// each batch, rules are also executed serially. Execution is synchronous:
// rule order and batch order are semantically significant, so nothing here
// runs concurrently.
type RuleExecutor[T Plan[T]] struct {
	batches        []Batch[T]
	isPlanIntegral func(T) bool
	observer       Observer
}

// NewExecutor returns an executor over the given batches. isPlanIntegral
// is checked after every single rule application; a plan that fails it
// aborts the run immediately with an IntegrityError attributing the rule.
func NewExecutor[T Plan[T]](batches []Batch[T], isPlanIntegral func(T) bool) *RuleExecutor[T] {
	return &RuleExecutor[T]{
		batches:        batches,
		isPlanIntegral: isPlanIntegral,
		observer:       DefaultObserver(),
	}
}

// SetObserver replaces the executor's progress observer.
func (e *RuleExecutor[T]) SetObserver(o Observer) {
	e.observer = o
}

// Execute runs all batches over a deep copy of plan and returns the
// rewritten plan. The input is never mutated. The first integrity
// violation is fatal to the whole call: no partial plan is returned and no
// further batches run. Reaching an iteration cap is not an error.
func (e *RuleExecutor[T]) Execute(plan T) (T, error) {
	current := plan.Clone()

	for _, batch := range e.batches {
		iteration := 1
		startTime := timex.GetNow()
		// batch start snapshot, for change reporting only
		batchStart := current.Clone()
		// previous iteration snapshot, for fixed point detection
		last := current.Clone()

		for {
			for _, r := range batch.Rules {
				if updated, ok := r.Apply(current); ok {
					current = updated
				}
				if !e.isPlanIntegral(current) {
					var zero T
					return zero, &IntegrityError{Rule: r.Name(), Batch: batch.Name}
				}
			}
			iteration++
			capReached := iteration > batch.Strategy.NumIterations()
			if capReached && batch.Strategy.NumIterations() > 1 {
				e.observer.OnMaxIterations(batch.Name, iteration-1)
			}
			if current.Equal(last) {
				e.observer.OnFixedPoint(batch.Name, iteration-1)
				break
			}
			if capReached {
				break
			}
			last = current.Clone()
		}

		e.observer.OnBatchDone(batch.Name, !batchStart.Equal(current), timex.Since(startTime))
	}
	return current, nil
}

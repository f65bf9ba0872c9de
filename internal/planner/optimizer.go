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

// Package planner assembles the built-in optimizer: the rule batches that
// rewrite scalar expressions and the executor wiring that drives them to a
// fixed point.
package planner

import (
	"github.com/catalyst-go/catalyst/internal/conf"
	"github.com/catalyst-go/catalyst/internal/expr"
	"github.com/catalyst-go/catalyst/pkg/rule"
	"github.com/catalyst-go/catalyst/pkg/tree"
)

// Optimizer rewrites expressions with the built-in rule batches. Create it
// with NewOptimizer after configuration is loaded.
type Optimizer struct {
	exec *rule.RuleExecutor[tree.Node]
}

// NewOptimizer builds an optimizer whose fixed point batches are capped by
// planner.maxIterations from the configuration.
func NewOptimizer() *Optimizer {
	batches := []rule.Batch[tree.Node]{
		{
			Name:     "operator optimization",
			Strategy: rule.FixedPoint(conf.Config.Planner.MaxIterations),
			Rules: []rule.Rule[tree.Node]{
				&constantFolding{},
				&booleanSimplification{},
			},
		},
	}
	return &Optimizer{exec: rule.NewExecutor(batches, isPlanIntegral)}
}

// isPlanIntegral is checked after every rule application: a rewrite must
// keep the plan a resolved expression.
func isPlanIntegral(plan tree.Node) bool {
	e, ok := plan.(*expr.Expr)
	return ok && e.Resolved()
}

// Optimize runs all batches over the expression and returns the rewritten
// one. The input is not mutated.
func (o *Optimizer) Optimize(e *expr.Expr) (*expr.Expr, error) {
	res, err := o.exec.Execute(e)
	if err != nil {
		return nil, err
	}
	return res.(*expr.Expr), nil
}

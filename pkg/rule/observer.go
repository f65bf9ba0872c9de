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
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catalyst-go/catalyst/internal/conf/logger"
)

// Observer receives executor progress notifications. The hooks are purely
// observational and have no effect on control flow.
type Observer interface {
	// OnFixedPoint is invoked when a batch converged, i.e. one more
	// iteration produced a plan equal to the previous iteration's plan.
	OnFixedPoint(batch string, iterations int)
	// OnMaxIterations is invoked when a batch with an iteration budget
	// greater than one stopped because the budget was exhausted.
	OnMaxIterations(batch string, iterations int)
	// OnBatchDone is invoked after every batch; changed reports whether
	// the batch's net effect left the plan different from its start.
	OnBatchDone(batch string, changed bool, took time.Duration)
}

// NopObserver discards all notifications.
type NopObserver struct{}

func (NopObserver) OnFixedPoint(string, int)               {}
func (NopObserver) OnMaxIterations(string, int)            {}
func (NopObserver) OnBatchDone(string, bool, time.Duration) {}

// LogObserver writes notifications to a logrus logger at debug level.
type LogObserver struct {
	Logger *logrus.Logger
}

// DefaultObserver logs through the process wide logger.
func DefaultObserver() Observer {
	return &LogObserver{Logger: logger.Log}
}

func (o *LogObserver) OnFixedPoint(batch string, iterations int) {
	o.Logger.Debugf("Fixed point reached for batch %s after %d iterations", batch, iterations)
}

func (o *LogObserver) OnMaxIterations(batch string, iterations int) {
	o.Logger.Debugf("Max iterations %d reached for batch %s", iterations, batch)
}

func (o *LogObserver) OnBatchDone(batch string, changed bool, took time.Duration) {
	if changed {
		o.Logger.Debugf("Batch %s updated current plan in %s", batch, took)
	} else {
		o.Logger.Debugf("Batch %s has no effect, took %s", batch, took)
	}
}

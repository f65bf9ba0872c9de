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

// Package timex wraps the process clock so that batch timings reported by
// the rule executor are deterministic under test.
package timex

import (
	"os"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

var (
	Clock     clock.Clock
	IsTesting bool
)

func init() {
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, "-test.") {
			IsTesting = true
			break
		}
	}
	InitClock()
}

func InitClock() {
	if IsTesting {
		Clock = clock.NewMock()
	} else {
		Clock = clock.New()
	}
}

func GetNow() time.Time {
	return Clock.Now()
}

func GetNowInMilli() int64 {
	return Clock.Now().UnixMilli()
}

// Since returns the elapsed clock time since t.
func Since(t time.Time) time.Duration {
	return Clock.Now().Sub(t)
}

// Add forwards the mock clock, for tests only.
func Add(d time.Duration) {
	if mock, ok := Clock.(*clock.Mock); ok {
		mock.Add(d)
	}
}

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

package errorx

type ErrorCode int

const (
	Undefined_Err ErrorCode = 1000
	GENERAL_ERR   ErrorCode = 1001
	NOT_FOUND     ErrorCode = 1002

	// error codes for the tree algebra

	TreeError ErrorCode = 2001

	// error codes for rule execution

	PlanError ErrorCode = 2101
)

// IsPlanError reports whether err was raised while executing rule batches,
// e.g. a structural integrity violation.
func IsPlanError(err error) bool {
	if withCode, ok := err.(ErrorWithCode); ok {
		return withCode.Code() == PlanError
	}
	return false
}

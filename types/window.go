/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"time"
)

// DateWindow is the chart date range used for dateField filtering and
// zero filling. Either bound may be nil.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

func NewDateWindow(start, end *time.Time) DateWindow {
	return DateWindow{
		Start: start,
		End:   end,
	}
}

// IsSet reports whether both bounds are present.
func (w DateWindow) IsSet() bool {
	return w.Start != nil && w.End != nil
}

// Contains checks if t is within the window, both bounds inclusive.
func (w DateWindow) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

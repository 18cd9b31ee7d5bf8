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

/*
Package condition narrows dataset records with typed conditions.

The kind of the targeted field is inferred from its first non-null value and
selects one comparator:

	string   is, isNot, contains, notContains (case-insensitive), greater/less, null checks
	number   numeric ordering when both sides are numeric, string rules otherwise
	boolean  stringified booleans; greaterThan and lessThan are not supported
	date     instants in the chart location, truncated to the day for day and
	         coarser intervals, to the interval unit otherwise
	array    contains tests membership

Conditions with an unsupported operator or without a value (other than
isNull/isNotNull) leave the data unchanged. Each applied condition can only
remove records.

# Usage

	res, err := condition.Filter(records, "root[].created", []types.Condition{
		{Field: "status", Operator: types.OperatorIs, Value: "active"},
	}, condition.Options{Interval: types.IntervalDay})

res.Options holds, per condition, the distinct values of the field seen
before that condition was applied, so a UI can offer them as choices.
*/
package condition

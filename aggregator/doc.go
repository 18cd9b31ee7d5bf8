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
Package aggregator reduces the y values of an x bucket.

# Aggregation Types

One aggregator per dataset yAxisOperation:

	none          last value wins, kept raw
	count         number of values
	count_unique  number of distinct values
	sum, avg      numeric, non-numeric values count as 0
	min, max      numeric, non-numeric values are skipped

NestedAggregator handles y paths with a second [] segment, where every
record contributes a whole collection.

# Core Interfaces

	type AggregatorFunction interface {
		New() AggregatorFunction
		Add(value interface{})
		Result() interface{}
	}

GroupAggregator keeps one AggregatorFunction per bucket key:

	ga := aggregator.NewGroupAggregator(aggregator.CreateBuiltinAggregator(types.OperationSum))
	ga.Add("Jan", 10)
	ga.Add("Jan", 5)
	ga.Results() // [15]

Custom implementations can replace a builtin one with Register.
*/
package aggregator

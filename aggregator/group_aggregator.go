package aggregator

// GroupAggregator aggregates values per bucket key and keeps the keys in
// the order they were first added.
type GroupAggregator struct {
	prototype AggregatorFunction
	keys      []string
	groups    map[string]AggregatorFunction
}

// NewGroupAggregator creates a group aggregator whose buckets are created
// with prototype.New().
func NewGroupAggregator(prototype AggregatorFunction) *GroupAggregator {
	return &GroupAggregator{
		prototype: prototype,
		groups:    make(map[string]AggregatorFunction),
	}
}

// Touch registers key without adding a value.
func (ga *GroupAggregator) Touch(key string) {
	if _, ok := ga.groups[key]; !ok {
		ga.groups[key] = ga.prototype.New()
		ga.keys = append(ga.keys, key)
	}
}

func (ga *GroupAggregator) Add(key string, value interface{}) {
	ga.Touch(key)
	ga.groups[key].Add(value)
}

// Keys returns the bucket keys in first-seen order.
func (ga *GroupAggregator) Keys() []string {
	return ga.keys
}

// Results returns the result of every bucket in key order.
func (ga *GroupAggregator) Results() []interface{} {
	out := make([]interface{}, len(ga.keys))
	for i, key := range ga.keys {
		out[i] = ga.groups[key].Result()
	}
	return out
}

package table

// Column 表格列定义。Nested object fields are sub-columns of their parent.
type Column struct {
	Header   string   `json:"Header"`
	Accessor string   `json:"accessor,omitempty"`
	Columns  []Column `json:"columns,omitempty"`
}

// Data is the table of one dataset.
type Data struct {
	Columns []Column                 `json:"columns"`
	Data    []map[string]interface{} `json:"data"`
}

// Accessors lists the row keys of the leaf columns in display order.
func (d Data) Accessors() []string {
	var out []string
	for _, c := range d.Columns {
		if len(c.Columns) == 0 {
			out = append(out, c.Accessor)
			continue
		}
		for _, sub := range c.Columns {
			out = append(out, sub.Accessor)
		}
	}
	return out
}

// Headers lists the leaf column headers, "parent child" for nested ones.
func (d Data) Headers() []string {
	var out []string
	for _, c := range d.Columns {
		if len(c.Columns) == 0 {
			out = append(out, c.Header)
			continue
		}
		for _, sub := range c.Columns {
			out = append(out, c.Header+" "+sub.Header)
		}
	}
	return out
}

// columnSet registers columns in discovery order.
type columnSet struct {
	order []*columnEntry
	index map[string]*columnEntry
}

type columnEntry struct {
	header   string
	accessor string
	children *columnSet
}

func newColumnSet() *columnSet {
	return &columnSet{index: make(map[string]*columnEntry)}
}

func (s *columnSet) register(header, accessor string) *columnEntry {
	if e, ok := s.index[header]; ok {
		if e.accessor == "" {
			e.accessor = accessor
		}
		return e
	}
	e := &columnEntry{header: header, accessor: accessor}
	s.order = append(s.order, e)
	s.index[header] = e
	return e
}

func (s *columnSet) registerNested(parent, child, accessor string) {
	e := s.register(parent, "")
	if e.children == nil {
		e.children = newColumnSet()
	}
	e.children.register(child, accessor)
}

// reorder moves the named columns to the front in the given order.
func (s *columnSet) reorder(names []string) {
	if len(names) == 0 {
		return
	}
	front := make([]*columnEntry, 0, len(s.order))
	moved := make(map[*columnEntry]bool)
	for _, name := range names {
		if e, ok := s.index[name]; ok && !moved[e] {
			front = append(front, e)
			moved[e] = true
		}
	}
	for _, e := range s.order {
		if !moved[e] {
			front = append(front, e)
		}
	}
	s.order = front
}

func (s *columnSet) columns() []Column {
	out := make([]Column, 0, len(s.order))
	for _, e := range s.order {
		c := Column{Header: e.header}
		if e.children != nil {
			c.Columns = e.children.columns()
		} else {
			c.Accessor = e.accessor
		}
		out = append(out, c)
	}
	return out
}

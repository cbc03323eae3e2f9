package koch

// Data is the aggregate state of a subtree at some depth.
//
// Segments and Perimeter describe the finest boundary at that exact depth; deeper levels
// replace them. Area accumulates: every bump added on the way down stays part of the shape.
type Data struct {
	Leaf      bool    `json:"leaf"`
	Segments  int     `json:"segment_count"`
	Perimeter float64 `json:"perimeter"`
	Area      float64 `json:"area"`
}

// Add sums the counters of d and o. Leaf is left as in d.
func (d Data) Add(o Data) Data {
	d.Segments += o.Segments
	d.Perimeter += o.Perimeter
	d.Area += o.Area
	return d
}

// Row is one line of the per-depth table.
type Row struct {
	Depth int `json:"n"`
	Data
}

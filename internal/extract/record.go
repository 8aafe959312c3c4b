package extract

// SubjectColumn is the column every record starts with.
const SubjectColumn = "subject"

// Record is one flattened output row: subject ID, one column per level name,
// and one column per resolved value path. Column order is insertion order.
// A nil cell is the missing-value marker; it becomes a null cell in the
// assembled table. A record is populated once and never mutated afterwards.
type Record struct {
	columns []string
	values  map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set adds a column. Setting an existing column overwrites its value but
// keeps its position.
func (r *Record) Set(column string, value any) {
	if _, exists := r.values[column]; !exists {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// Get returns a column's value. The second return is false when the record
// has no such column (distinct from a present-but-missing nil cell).
func (r *Record) Get(column string) (any, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the column names in insertion order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return len(r.columns)
}

// Map returns the record as a plain map. Column order is lost; callers that
// need it use Columns.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

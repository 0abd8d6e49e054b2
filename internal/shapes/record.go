package shapes

import "github.com/google/uuid"

// Record is an external data row bound to a shape.
type Record struct {
	ID     uuid.UUID
	Values map[string]string
}

func NewRecord(values map[string]string) *Record {
	return &Record{ID: uuid.New(), Values: values}
}

// Value looks up a column.
func (r *Record) Value(column string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.Values[column]
	return v, ok
}

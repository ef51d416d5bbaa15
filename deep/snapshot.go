package deep

import "github.com/cellflow/cellflow/cellgraph"

// Snapshot returns a plain, non-reactive deep copy of v, detached from any
// wrapper or tracking identity. Handy as a frozen comparison baseline.
// Accepts deep and shallow wrappers, raw records/sequences and scalars.
func Snapshot(v any) any {
	switch vv := v.(type) {
	case *Record:
		return copyMap(vv.backing)
	case *List:
		return copySlice(vv.backing)
	case *cellgraph.CellHandle[any]:
		return Snapshot(vv.Peek())
	case map[string]any:
		return copyMap(vv)
	case []any:
		return copySlice(vv)
	default:
		return v
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Snapshot(v)
	}
	return out
}

func copySlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Snapshot(v)
	}
	return out
}

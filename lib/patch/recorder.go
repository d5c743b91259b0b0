package patch

// OpKind names a surface mutation.
type OpKind string

const (
	OpSet         OpKind = "set"
	OpRemove      OpKind = "remove"
	OpAddClass    OpKind = "add-class"
	OpRemoveClass OpKind = "remove-class"
)

// Op is one recorded surface mutation. Ops serialize to JSON for the browser
// side of a live component, which replays them onto the element.
type Op struct {
	Kind  OpKind `json:"op" msgpack:"op"`
	Name  string `json:"name" msgpack:"n"`
	Value string `json:"value,omitempty" msgpack:"v,omitempty"`
}

// Recorder records every mutation and forwards it to an optional wrapped
// surface.
type Recorder struct {
	next Surface
	ops  []Op
}

// NewRecorder returns a recorder forwarding to next, which may be nil.
func NewRecorder(next Surface) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) SetProperty(name, value string) {
	r.ops = append(r.ops, Op{Kind: OpSet, Name: name, Value: value})
	if r.next != nil {
		r.next.SetProperty(name, value)
	}
}

func (r *Recorder) RemoveProperty(name string) {
	r.ops = append(r.ops, Op{Kind: OpRemove, Name: name})
	if r.next != nil {
		r.next.RemoveProperty(name)
	}
}

// ToggleClass records the toggle. It is forwarded only when the wrapped
// surface is a ClassSurface.
func (r *Recorder) ToggleClass(class string, on bool) {
	kind := OpRemoveClass
	if on {
		kind = OpAddClass
	}
	r.ops = append(r.ops, Op{Kind: kind, Name: class})
	if cs, ok := r.next.(ClassSurface); ok {
		cs.ToggleClass(class, on)
	}
}

// Ops returns the mutations recorded since the last Reset.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Reset discards recorded ops. The wrapped surface is unaffected.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Replay applies ops to s in order. Class ops are skipped when s is not a
// ClassSurface.
func Replay(s Surface, ops []Op) {
	cs, _ := s.(ClassSurface)
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			s.SetProperty(op.Name, op.Value)
		case OpRemove:
			s.RemoveProperty(op.Name)
		case OpAddClass, OpRemoveClass:
			if cs != nil {
				cs.ToggleClass(op.Name, op.Kind == OpAddClass)
			}
		}
	}
}

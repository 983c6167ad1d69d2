package cfg

// TerminatorKind classifies a Terminator for the purposes the simplifier
// cares about: whether it is a plain jump, a conditional with a successor
// list, or something opaque (call, return, unwind, ...) that this pass
// never rewrites beyond remapping successor IDs after compaction.
type TerminatorKind int

const (
	KindGoto TerminatorKind = iota
	KindIf
	KindSwitch
	KindSwitchInt
	KindOther
)

// Terminator is the control-flow tail of a Block. Successors returns a
// read-only snapshot of the terminator's targets, in order; SuccessorSlots
// returns pointers to the same targets so the simplifier can rewrite them
// in place (goto-chain collapse, dead-block remap) without reconstructing
// the terminator.
type Terminator interface {
	Kind() TerminatorKind
	Successors() []BlockID
	SuccessorSlots() []*BlockID
}

// Goto is an unconditional jump to Target.
type Goto struct {
	Target BlockID
}

func (g *Goto) Kind() TerminatorKind       { return KindGoto }
func (g *Goto) Successors() []BlockID      { return []BlockID{g.Target} }
func (g *Goto) SuccessorSlots() []*BlockID { return []*BlockID{&g.Target} }

// If is a two-way conditional. Cond is opaque to this pass.
type If struct {
	Cond Statement
	Then BlockID
	Else BlockID
}

func (i *If) Kind() TerminatorKind       { return KindIf }
func (i *If) Successors() []BlockID      { return []BlockID{i.Then, i.Else} }
func (i *If) SuccessorSlots() []*BlockID { return []*BlockID{&i.Then, &i.Else} }

// Switch is an arm-per-value conditional over an opaque enum-like
// discriminant, with no "otherwise" arm.
type Switch struct {
	Disc Statement
	Arms []BlockID
}

func (s *Switch) Kind() TerminatorKind { return KindSwitch }

func (s *Switch) Successors() []BlockID {
	out := make([]BlockID, len(s.Arms))
	copy(out, s.Arms)
	return out
}

func (s *Switch) SuccessorSlots() []*BlockID {
	slots := make([]*BlockID, len(s.Arms))
	for i := range s.Arms {
		slots[i] = &s.Arms[i]
	}
	return slots
}

// SwitchInt is an arm-per-integer-value conditional with an explicit
// fallback arm for values not listed in Values.
type SwitchInt struct {
	Disc      Statement
	Values    []int64
	Arms      []BlockID
	Otherwise BlockID
}

func (s *SwitchInt) Kind() TerminatorKind { return KindSwitchInt }

// Successors returns Arms followed by Otherwise, so the last entry is
// always the fallback target. Branch collapse (4.1.5) treats this like any
// other conditional: if every entry — arms and otherwise alike — names the
// same block, the whole terminator degenerates to a Goto.
func (s *SwitchInt) Successors() []BlockID {
	out := make([]BlockID, 0, len(s.Arms)+1)
	out = append(out, s.Arms...)
	out = append(out, s.Otherwise)
	return out
}

func (s *SwitchInt) SuccessorSlots() []*BlockID {
	slots := make([]*BlockID, 0, len(s.Arms)+1)
	for i := range s.Arms {
		slots = append(slots, &s.Arms[i])
	}
	slots = append(slots, &s.Otherwise)
	return slots
}

// Other stands in for terminator kinds this pass treats opaquely: Call,
// Return, Unwind, Resume, Abort, and similar leaves or pass-through edges
// that carry no redundancy this pass is allowed to exploit. Its successors
// (if any — Return and Unwind have none) are still rewritten correctly by
// dead-block compaction.
type Other struct {
	Label string
	Succs []BlockID
}

func (o *Other) Kind() TerminatorKind { return KindOther }
func (o *Other) Successors() []BlockID {
	out := make([]BlockID, len(o.Succs))
	copy(out, o.Succs)
	return out
}

func (o *Other) SuccessorSlots() []*BlockID {
	slots := make([]*BlockID, len(o.Succs))
	for i := range o.Succs {
		slots[i] = &o.Succs[i]
	}
	return slots
}

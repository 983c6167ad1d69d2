package cfg

import "errors"

// ErrInvalidTerminatorState is raised when the driver finds a block with a
// positive predecessor count but no terminator. Well-formed input never
// triggers this; it signals a bug in the caller that built the Function,
// not a condition this pass diagnoses to an end user (see package cfg's
// Non-goals: this pass produces no user-visible errors).
var ErrInvalidTerminatorState = errors.New("cfg: reachable block has no terminator")

// CfgSimplifier holds the mutable state of one simplification run: the
// function's block vector and the predecessor-count vector computed from
// it. Constructing one and calling simplify is the entire algorithm; there
// is no reason to keep a CfgSimplifier around afterward.
type CfgSimplifier struct {
	blocks    []*Block
	predCount predCount
}

// newCfgSimplifier computes pred_count by a preorder traversal from Entry
// rather than by scanning the whole block vector, so that edges out of
// dead blocks never inflate the counts.
func newCfgSimplifier(fn *Function) *CfgSimplifier {
	return &CfgSimplifier{
		blocks:    fn.Blocks,
		predCount: newPredCount(fn),
	}
}

// Simplify runs the fixed-point driver loop over fn in place. It
// does not remove dead blocks — call RemoveDeadBlocks afterward, or use
// SimplifyCfg.Run to get both in the documented order.
func Simplify(fn *Function) {
	newCfgSimplifier(fn).simplify()
}

func (s *CfgSimplifier) simplify() {
	for {
		changed := false

		for bb := range s.blocks {
			id := BlockID(bb)
			if s.predCount[id] == 0 {
				continue
			}

			block := s.blocks[id]
			terminator := block.Take()
			if terminator == nil {
				panic(ErrInvalidTerminatorState)
			}

			for _, slot := range terminator.SuccessorSlots() {
				s.collapseGotoChain(slot, &changed)
			}

			var newStmts []Statement
			innerChanged := true
			for innerChanged {
				innerChanged = false
				if s.simplifyBranch(&terminator) {
					innerChanged = true
				}
				if s.mergeSuccessor(&newStmts, &terminator) {
					innerChanged = true
				}
				changed = changed || innerChanged
			}

			block.Statements = append(block.Statements, newStmts...)
			block.Terminator = terminator
		}

		if !changed {
			break
		}
	}
}

// collapseGotoChain collapses a chain of empty-statement Goto blocks
// starting at *cur down to its ultimate non-trivial target, rewriting *cur
// in place and adjusting predecessor counts for the edge that moved.
//
// If the block at *cur has a nil terminator, the driver is already in the
// middle of rewriting it — we have recursed back onto our own starting
// block via a cycle of empty gotos. We stop there and let the loop
// collapse to its entry rather than recursing forever.
func (s *CfgSimplifier) collapseGotoChain(cur *BlockID, changed *bool) {
	block := s.blocks[*cur]
	if len(block.Statements) != 0 {
		return
	}
	g, ok := block.Terminator.(*Goto)
	if !ok {
		return
	}

	taken := block.Take()
	target := &g.Target
	s.collapseGotoChain(target, changed)
	block.Terminator = taken

	newTarget := g.Target
	if *cur != newTarget {
		*changed = true
	}
	if s.predCount[*cur] == 1 {
		// Ours was the last reference to *cur; its own edge to the target
		// keeps carrying the count, so the target's total is unchanged.
		s.predCount[*cur] = 0
	} else {
		s.predCount[newTarget]++
		s.predCount[*cur]--
	}
	*cur = newTarget
}

// mergeSuccessor absorbs a Goto target with exactly one predecessor (the
// current block) into the current block: the target's
// statements move onto newStmts, the target's terminator becomes the
// current terminator, and the target is marked dead (pred_count 0).
//
// If the target's terminator is nil, the target is the block currently
// being rewritten by an enclosing call (an unreachable loop of gotos with
// a single predecessor pointing at itself) — merging would lose the
// in-flight terminator, so this declines rather than merging.
func (s *CfgSimplifier) mergeSuccessor(newStmts *[]Statement, terminator *Terminator) bool {
	g, ok := (*terminator).(*Goto)
	if !ok {
		return false
	}
	target := g.Target
	if s.predCount[target] != 1 {
		return false
	}

	targetBlock := s.blocks[target]
	taken := targetBlock.Take()
	if taken == nil {
		return false
	}

	*newStmts = append(*newStmts, targetBlock.Statements...)
	targetBlock.Statements = nil
	s.predCount[target] = 0
	*terminator = taken
	return true
}

// simplifyBranch rewrites a conditional terminator whose successors are
// all the same block into a plain Goto. Each duplicate edge
// beyond the first is removed from the target's predecessor count.
func (s *CfgSimplifier) simplifyBranch(terminator *Terminator) bool {
	switch (*terminator).Kind() {
	case KindIf, KindSwitch, KindSwitchInt:
	default:
		return false
	}

	successors := (*terminator).Successors()
	if len(successors) == 0 {
		return false
	}
	first := successors[0]
	for _, succ := range successors[1:] {
		if succ != first {
			return false
		}
	}

	s.predCount[first] -= len(successors) - 1
	*terminator = &Goto{Target: first}
	return true
}

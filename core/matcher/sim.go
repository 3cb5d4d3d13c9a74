// core/matcher/sim.go
package matcher

import "context"

const inf = int(^uint(0) >> 2)

// sim tracks, per NFA instruction, the fewest edits that reach it.
type sim struct {
	prog      *program
	k         int
	kinds     Kinds
	cur, next []int
	work      []int

	ctx   context.Context
	steps int
	err   error // set when ctx ended a match attempt
}

func newSim(ctx context.Context, p *program, b Budget) *sim {
	n := len(p.insts)
	return &sim{
		ctx:   ctx,
		prog:  p,
		k:     b.Max,
		kinds: b.Kinds,
		cur:   make([]int, n),
		next:  make([]int, n),
		work:  make([]int, 0, n),
	}
}

func fill(cost []int) {
	for i := range cost {
		cost[i] = inf
	}
}

func (s *sim) relax(cost []int, pc, c int) {
	if c <= s.k && c < cost[pc] {
		cost[pc] = c
		s.work = append(s.work, pc)
	}
}

// closure follows epsilon edges (free) and, when enabled, deletions (one
// edit each) until no cost improves.
func (s *sim) closure(cost []int) {
	s.work = s.work[:0]
	for pc, c := range cost {
		if c <= s.k {
			s.work = append(s.work, pc)
		}
	}
	del := s.kinds.Has(Deletion)
	for len(s.work) > 0 {
		pc := s.work[len(s.work)-1]
		s.work = s.work[:len(s.work)-1]
		c := cost[pc]
		in := &s.prog.insts[pc]
		switch in.op {
		case opSplit:
			s.relax(cost, in.x, c)
			s.relax(cost, in.y, c)
		case opJump:
			s.relax(cost, in.x, c)
		case opChar:
			if del {
				s.relax(cost, pc+1, c+1)
			}
		}
	}
}

func (s *sim) start() {
	fill(s.cur)
	s.cur[0] = 0
	s.closure(s.cur)
}

// step consumes residue r. allowIns is false for the first residue of a
// match so that a match never begins with an inserted residue.
func (s *sim) step(r byte, allowIns bool) bool {
	fill(s.next)
	sub := s.kinds.Has(Substitution)
	ins := allowIns && s.kinds.Has(Insertion)
	s.work = s.work[:0]
	for pc, c := range s.cur {
		if c > s.k {
			continue
		}
		in := &s.prog.insts[pc]
		if in.op != opChar {
			continue
		}
		if in.set.Has(r) {
			s.relax(s.next, pc+1, c)
		} else if sub {
			s.relax(s.next, pc+1, c+1)
		}
		if ins {
			s.relax(s.next, pc, c+1)
		}
	}
	s.closure(s.next)
	s.cur, s.next = s.next, s.cur
	for _, c := range s.cur {
		if c <= s.k {
			return true
		}
	}
	return false
}

// best runs an anchored match from text[start] and returns the end with the
// fewest edits, preferring the longest among equals. The context is polled
// every checkEvery residues; when it is done best fails and s.err is set.
func (s *sim) best(text []byte, start int) (end, errs int, ok bool) {
	s.start()
	mpc := s.prog.matchPC()
	errs = inf
	for i := start; i < len(text); i++ {
		if s.steps++; s.steps%checkEvery == 0 {
			if err := s.ctx.Err(); err != nil {
				s.err = err
				return 0, 0, false
			}
		}
		r := upperTab[text[i]]
		if isBreak(r) || !s.step(r, i > start) {
			break
		}
		if c := s.cur[mpc]; c <= s.k && c <= errs {
			end, errs, ok = i+1, c, true
		}
	}
	return end, errs, ok
}

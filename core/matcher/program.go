// core/matcher/program.go
package matcher

import (
	"errors"
	"fmt"

	"patmatch-core/pattern"
)

type opcode uint8

const (
	opChar  opcode = iota // consume one residue in set, continue at pc+1
	opSplit               // continue at x and y
	opJump                // continue at x
	opMatch
)

type inst struct {
	op   opcode
	set  pattern.Set
	x, y int
}

// program is a Thompson NFA; execution starts at 0 and accepts at the last
// instruction.
type program struct {
	insts []inst
}

func (p *program) matchPC() int { return len(p.insts) - 1 }

func buildProgram(atoms []pattern.Atom) (*program, error) {
	p := &program{}
	if err := p.seq(pattern.ExpandRepetition(atoms)); err != nil {
		return nil, err
	}
	if len(p.insts) == 0 {
		return nil, errors.New("pattern has no residues")
	}
	p.emit(inst{op: opMatch})
	return p, nil
}

func (p *program) emit(in inst) int {
	p.insts = append(p.insts, in)
	return len(p.insts) - 1
}

func (p *program) seq(atoms []pattern.Atom) error {
	for _, a := range atoms {
		if a.Kind == pattern.KindAnchor {
			continue
		}
		if err := p.atom(a); err != nil {
			return err
		}
	}
	return nil
}

func (p *program) atom(a pattern.Atom) error {
	switch {
	case a.Min == 1 && a.Max == 1:
		return p.body(a)
	case a.Optional():
		split := p.emit(inst{op: opSplit})
		if err := p.body(a); err != nil {
			return err
		}
		p.insts[split].x, p.insts[split].y = split+1, len(p.insts)
		return nil
	case a.Star():
		split := p.emit(inst{op: opSplit})
		if err := p.body(a); err != nil {
			return err
		}
		p.emit(inst{op: opJump, x: split})
		p.insts[split].x, p.insts[split].y = split+1, len(p.insts)
		return nil
	}
	return fmt.Errorf("unexpanded repeat {%d,%d}", a.Min, a.Max)
}

func (p *program) body(a pattern.Atom) error {
	if a.Kind == pattern.KindGroup {
		return p.seq(a.Atoms)
	}
	set := a.Matches()
	if set.IsEmpty() {
		return errors.New("empty residue class")
	}
	p.emit(inst{op: opChar, set: set})
	return nil
}

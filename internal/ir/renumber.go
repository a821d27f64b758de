package ir

// Counts returns one past the highest temp and label number used in instrs.
func Counts(instrs []Instr) (temps, labels int) {
	bumpTemp := func(op Operand) {
		if t, ok := op.(Temp); ok && int(t) >= temps {
			temps = int(t) + 1
		}
	}
	bumpLabel := func(l LabelID) {
		if int(l) >= labels {
			labels = int(l) + 1
		}
	}

	for _, instr := range instrs {
		switch i := instr.(type) {
		case *Assign:
			bumpTemp(i.Src)
		case *BinOp:
			bumpTemp(i.Dest)
			bumpTemp(i.Left)
			bumpTemp(i.Right)
		case *UnOp:
			bumpTemp(i.Dest)
			bumpTemp(i.X)
		case *Call:
			bumpTemp(i.Dest)
		case *Label:
			bumpLabel(i.ID)
		case *Goto:
			bumpLabel(i.Target)
		case *IfFalseGoto:
			bumpTemp(i.Cond)
			bumpLabel(i.Target)
		case *IfGoto:
			bumpTemp(i.Cond)
			bumpLabel(i.Target)
		case *Return:
			bumpTemp(i.Value)
		}
	}
	return temps, labels
}

// Renumber returns copies of instrs with every temp shifted by tempOffset
// and every label by labelOffset. The input is left untouched.
func Renumber(instrs []Instr, tempOffset, labelOffset int) []Instr {
	shift := func(op Operand) Operand {
		if t, ok := op.(Temp); ok {
			return t + Temp(tempOffset)
		}
		return op
	}
	label := func(l LabelID) LabelID {
		return l + LabelID(labelOffset)
	}

	out := make([]Instr, len(instrs))
	for n, instr := range instrs {
		switch i := instr.(type) {
		case *Assign:
			out[n] = &Assign{Dest: i.Dest, Src: shift(i.Src)}
		case *BinOp:
			out[n] = &BinOp{Dest: i.Dest + Temp(tempOffset), Op: i.Op, Left: shift(i.Left), Right: shift(i.Right)}
		case *UnOp:
			out[n] = &UnOp{Dest: i.Dest + Temp(tempOffset), Op: i.Op, X: shift(i.X)}
		case *Call:
			out[n] = &Call{Dest: i.Dest + Temp(tempOffset), Name: i.Name}
		case *Label:
			out[n] = &Label{ID: label(i.ID)}
		case *Goto:
			out[n] = &Goto{Target: label(i.Target)}
		case *IfFalseGoto:
			out[n] = &IfFalseGoto{Cond: shift(i.Cond), Target: label(i.Target)}
		case *IfGoto:
			out[n] = &IfGoto{Cond: shift(i.Cond), Target: label(i.Target)}
		case *Return:
			out[n] = &Return{Value: shift(i.Value)}
		case *ProcBegin:
			out[n] = &ProcBegin{Name: i.Name}
		case *ProcEnd:
			out[n] = &ProcEnd{}
		default:
			out[n] = instr
		}
	}
	return out
}

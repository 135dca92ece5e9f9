package msdemangle

// demangler holds the mutable state of a single Demangle call: the cursor
// over the input, the back-reference table, and the first-error-wins error
// slot (spec.md §7). A demangler is used for exactly one call and then
// discarded; it is not safe to reuse or share across goroutines.
type demangler struct {
	cur          *cursor
	nameBackRefs []string

	err       error
	errOffset int

	symbol NamePath
	typ    Type
}

func newDemangler(input string) *demangler {
	return &demangler{cur: newCursor(input)}
}

// fail records the first error seen. Subsequent read_* calls short-circuit
// once failed() is true.
func (d *demangler) fail(err error) {
	if d.err == nil {
		d.err = err
		d.errOffset = d.cur.pos
	}
}

func (d *demangler) failed() bool {
	return d.err != nil
}

// parse implements the top-level symbol grammar (spec.md §4.7).
func (d *demangler) parse() {
	if !d.cur.consumeByte('?') {
		// Non-mangled symbol: the whole remaining buffer is a raw identifier.
		d.symbol = NamePath{d.cur.remaining()}
		d.cur.advance(len(d.cur.remaining()))
		d.typ.Prim = Unknown
		return
	}

	d.symbol = d.readNamePath()
	if d.failed() {
		return
	}

	switch {
	case d.cur.consumeByte('3'):
		d.readVarType(&d.typ)

	case d.cur.consumeByte('Y'):
		d.typ.Prim = Function
		d.typ.CallingConv = d.readCallingConv()

		d.typ.Ptr = &Type{}
		d.typ.Ptr.SClass = d.readStorageClassForReturn()
		d.readVarType(d.typ.Ptr)

		for !d.failed() && !d.cur.empty() && !d.cur.startsWithByte('@') {
			p := &Type{}
			d.readVarType(p)
			d.typ.Params = append(d.typ.Params, p)
		}

	default:
		d.typ.Prim = Function
		d.typ.FuncClass = d.readFuncClass()
		d.cur.consumeByte('E') // 64-bit marker, no semantic effect
		d.typ.CallingConv = d.readCallingConv()

		d.typ.Ptr = &Type{}
		d.typ.Ptr.SClass = d.readStorageClass()
		d.readFuncReturnType(d.typ.Ptr)

		for !d.failed() && !d.cur.empty() && !d.cur.startsWithByte('Z') {
			p := &Type{}
			d.readVarType(p)
			d.typ.Params = append(d.typ.Params, p)
		}
	}
}

// readFuncReturnType reads a member function's return type. A leading '@'
// means the function is a structor: it has no declared return type, encoded
// as prim == None so the printer omits it.
func (d *demangler) readFuncReturnType(ty *Type) {
	if d.cur.consumeByte('@') {
		ty.Prim = None
		return
	}
	d.readVarType(ty)
	d.cur.consumeByte('@')
}

package msdemangle

// readVarType dispatches on the leading byte(s) of the cursor to parse one
// Type node into ty (spec.md §4.4). It recurses through pointers,
// references, arrays, and pointer-to-function types before bottoming out at
// a tag type or a primitive.
//
// ty is filled in place rather than built fresh and returned: a caller may
// have already set a field (most commonly SClass, for a pointee's storage
// class) before recursing here, and readVarType must never clobber a field
// it has no reason to touch.
func (d *demangler) readVarType(ty *Type) {
	if d.failed() {
		return
	}

	switch {
	case d.cur.consume("T"):
		d.readClass(Union, ty)

	case d.cur.consume("U"):
		d.readClass(Struct, ty)

	case d.cur.consume("V"):
		d.readClass(Class, ty)

	case d.cur.consume("W4"):
		ty.Prim = Enum
		ty.Name = d.readNamePath()

	case d.cur.consume("P6A"):
		ty.Prim = Ptr
		fn := &Type{Prim: Function}
		fn.Ptr = &Type{}
		d.readVarType(fn.Ptr) // return type
		for !d.failed() && !d.cur.consume("@Z") && !d.cur.consume("Z") {
			p := &Type{}
			d.readVarType(p)
			fn.Params = append(fn.Params, p)
		}
		ty.Ptr = fn

	case d.cur.consume("A"):
		ty.Prim = Ref
		d.cur.consumeByte('E') // 64-bit marker, no semantic effect
		ty.Ptr = &Type{}
		ty.Ptr.SClass = d.readStorageClass()
		d.readVarType(ty.Ptr)

	case d.cur.consume("P"):
		ty.Prim = Ptr
		d.cur.consumeByte('E')
		ty.Ptr = &Type{}
		ty.Ptr.SClass = d.readStorageClass()
		d.readVarType(ty.Ptr)

	case d.cur.consume("Q"):
		ty.Prim = Ptr
		ty.SClass = Const
		d.cur.consumeByte('E')
		ty.Ptr = &Type{}
		ty.Ptr.SClass = d.readStorageClass()
		d.readVarType(ty.Ptr)

	case d.cur.consume("Y"):
		dimension := d.readNumber()
		if d.failed() {
			return
		}
		if dimension <= 0 {
			d.fail(ErrInvalidArrayDim)
			return
		}

		tp := ty
		for i := int32(0); i < dimension; i++ {
			tp.Prim = Array
			tp.Len = d.readNumber()
			tp.Ptr = &Type{}
			tp = tp.Ptr
		}

		if d.cur.consume("$$C") {
			switch {
			case d.cur.consume("B"):
				ty.SClass = Const
			case d.cur.consume("C"), d.cur.consume("D"):
				ty.SClass = Const | Volatile
			case d.cur.consume("A"):
				// no qualifiers: leave ty.SClass untouched
			default:
				d.fail(ErrUnknownStorageCls)
				return
			}
		}

		d.readVarType(tp)

	default:
		ty.Prim = d.readPrimType()
	}
}

// readClass parses a Struct/Union/Class type: either a plain qualified name,
// or a template instantiation ("?$" name "@" args... "@").
func (d *demangler) readClass(prim PrimKind, ty *Type) {
	ty.Prim = prim
	if d.cur.consume("?$") {
		ty.Name = NamePath{d.readString()}
		for !d.failed() && !d.cur.consumeByte('@') {
			p := &Type{}
			d.readVarType(p)
			ty.Params = append(ty.Params, p)
		}
		return
	}
	ty.Name = d.readNamePath()
}

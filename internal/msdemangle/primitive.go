package msdemangle

// readPrimType decodes a primitive type tag. Single-byte tags are consumed
// directly; an underscore introduces a two-byte extended tag.
func (d *demangler) readPrimType() PrimKind {
	if d.failed() {
		return Unknown
	}

	switch c := d.cur.get(); c {
	case 'X':
		return Void
	case 'D':
		return Char
	case 'C':
		return Schar
	case 'E':
		return Uchar
	case 'F':
		return Short
	case 'G':
		return Ushort
	case 'H':
		return Int
	case 'I':
		return Uint
	case 'J':
		return Long
	case 'K':
		return Ulong
	case 'M':
		return Float
	case 'N':
		return Double
	case 'O':
		return Ldouble
	case '_':
		switch c2 := d.cur.get(); c2 {
		case 'N':
			return Bool
		case 'J':
			return Llong
		case 'K':
			return Ullong
		case 'W':
			return Wchar
		default:
			d.cur.unget()
			d.cur.unget()
			d.fail(ErrUnknownPrimitive)
			return Unknown
		}
	default:
		d.cur.unget()
		d.fail(ErrUnknownPrimitive)
		return Unknown
	}
}

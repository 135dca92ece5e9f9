package msdemangle

// readNumber decodes the mangled encoding of an integer:
//
//	number      ::= ['?'] non-neg
//	non-neg     ::= digit1_10       # one of '0'..'9' meaning 1..10
//	            |   hex_digit+ '@'  # hex digits 'A'..'P' = 0..15
//
// A leading '?' negates the value. A single decimal digit d encodes d+1
// (so '0' encodes 1, '9' encodes 10). Any value that is 0 or >= 11 is
// encoded as base-16 digits 'A'..'P' terminated by '@'.
func (d *demangler) readNumber() int32 {
	if d.failed() {
		return 0
	}

	neg := d.cur.consumeByte('?')

	c := d.cur.peek()
	if '0' <= c && c <= '9' {
		d.cur.advance(1)
		v := int32(c-'0') + 1
		if neg {
			v = -v
		}
		return v
	}

	var v int32
	for {
		c = d.cur.peek()
		if c == '@' {
			d.cur.advance(1)
			if neg {
				v = -v
			}
			return v
		}
		if c < 'A' || c > 'P' {
			d.fail(ErrBadNumber)
			return 0
		}
		d.cur.advance(1)
		v = v*16 + int32(c-'A')
	}
}

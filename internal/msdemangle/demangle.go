package msdemangle

// Demangle converts a mangled MSVC symbol name into its C++ declaration.
// If the input does not begin with '?' it is not a mangled name at all;
// Demangle returns it unchanged rather than failing.
func Demangle(input string) (string, error) {
	d := newDemangler(input)
	d.parse()
	if d.failed() {
		return "", &ParseError{
			Offset: d.errOffset,
			Remain: d.cur.s[d.errOffset:],
			Err:    d.err,
		}
	}
	if d.typ.Prim == Unknown {
		return d.symbol[0], nil
	}
	return render(d.symbol, &d.typ), nil
}

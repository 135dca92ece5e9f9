package msdemangle

import (
	"strconv"
	"strings"
)

var primNames = map[PrimKind]string{
	Void:    "void",
	Bool:    "bool",
	Char:    "char",
	Schar:   "signed char",
	Uchar:   "unsigned char",
	Short:   "short",
	Ushort:  "unsigned short",
	Int:     "int",
	Uint:    "unsigned int",
	Long:    "long",
	Ulong:   "unsigned long",
	Llong:   "long long",
	Ullong:  "unsigned long long",
	Wchar:   "wchar_t",
	Float:   "float",
	Double:  "double",
	Ldouble: "long double",
}

var tagKeywords = map[PrimKind]string{
	Struct: "struct",
	Union:  "union",
	Class:  "class",
}

// printer renders a parsed symbol as a C++ declaration. It walks the Type
// tree twice (writePre/writePost), which is what lets it express the
// "inside-out" precedence of C declarator grammar: a pointer to an array or
// a pointer to a function needs parentheses that a single top-down pass has
// no way to know it will need until it is too late (spec.md §4.8).
type printer struct {
	sb          strings.Builder
	lastIsAlpha bool
}

func (p *printer) writeString(s string) {
	if s == "" {
		return
	}
	p.sb.WriteString(s)
	last := s[len(s)-1]
	p.lastIsAlpha = isAlpha(last)
}

// writeSigil writes a declarator pointer/reference marker ("*" or "&").
// Unlike writeString it leaves the printer in an "alphabetic" state
// afterwards: a sigil separates from what follows it (a name, "const", or a
// further sigil) the same way an identifier does, even though it is not
// itself alphabetic.
func (p *printer) writeSigil(s string) {
	p.sb.WriteString(s)
	p.lastIsAlpha = true
}

func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// writeSpace inserts a single space iff the previously emitted character was
// alphabetic, or the last thing written was a sigil (see writeSigil). This
// keeps "int" and "x" apart and yields "int * x" and "int (* x)[2]"; no space
// follows other punctuation such as "(", "<" or ">".
func (p *printer) writeSpace() {
	if p.lastIsAlpha {
		p.sb.WriteByte(' ')
		p.lastIsAlpha = false
	}
}

// render produces the complete declaration for a symbol name and type:
// writePre(T); writeName(S); writePost(T).
func render(name NamePath, ty *Type) string {
	p := &printer{}
	p.writePre(ty)
	p.writeName(name)
	p.writePost(ty)
	return p.sb.String()
}

func (p *printer) writePre(ty *Type) {
	if ty == nil {
		return
	}

	switch ty.Prim {
	case Unknown, None:
		// nothing to print

	case Function:
		p.writePre(ty.Ptr)
		return // storage class (there is none on a bare Function) already handled by ty.Ptr

	case Ptr, Ref:
		p.writePre(ty.Ptr)
		if ty.Ptr.Prim == Function || ty.Ptr.Prim == Array {
			p.writeSpace()
			p.writeString("(")
		}
		p.writeSpace()
		if ty.Prim == Ptr {
			p.writeSigil("*")
		} else {
			p.writeSigil("&")
		}

	case Array:
		p.writePre(ty.Ptr)

	case Struct:
		p.writeClass(tagKeywords[Struct], ty)
	case Union:
		p.writeClass(tagKeywords[Union], ty)
	case Class:
		p.writeClass(tagKeywords[Class], ty)

	case Enum:
		p.writeString("enum ")
		p.writeName(ty.Name)

	default:
		p.writeString(primNames[ty.Prim])
	}

	if ty.SClass&Const != 0 {
		p.writeSpace()
		p.writeString("const")
	}
}

func (p *printer) writePost(ty *Type) {
	if ty == nil {
		return
	}

	switch ty.Prim {
	case Function:
		p.writeString("(")
		p.writeParams(ty)
		p.writeString(")")

	case Ptr, Ref:
		if ty.Ptr.Prim == Function || ty.Ptr.Prim == Array {
			p.writeString(")")
		}
		p.writePost(ty.Ptr)

	case Array:
		p.writeString("[")
		p.writeString(strconv.Itoa(int(ty.Len)))
		p.writeString("]")
		p.writePost(ty.Ptr)
	}
}

// writeParams renders a function or template argument list, each parameter
// as writePre followed by writePost, joined without spaces around the comma.
func (p *printer) writeParams(ty *Type) {
	for i, param := range ty.Params {
		if i != 0 {
			p.writeString(",")
		}
		p.writePre(param)
		p.writePost(param)
	}
}

// writeName emits a Name Path in declaration order (outermost first),
// joined with "::". The innermost fragment synthesizes constructor
// ("?0" prefix) and destructor ("?1" prefix) forms.
func (p *printer) writeName(name NamePath) {
	if len(name) == 0 {
		return
	}
	p.writeSpace()

	for i := len(name) - 1; i > 0; i-- {
		p.writeString(name[i])
		p.writeString("::")
	}

	switch {
	case strings.HasPrefix(name[0], "?0"):
		cls := name[0][2:]
		p.writeString(cls)
		p.writeString("::")
		p.writeString(cls)
	case strings.HasPrefix(name[0], "?1"):
		cls := name[0][2:]
		p.writeString(cls)
		p.writeString("::~")
		p.writeString(cls)
	default:
		p.writeString(name[0])
	}
}

func (p *printer) writeClass(keyword string, ty *Type) {
	p.writeString(keyword)
	p.writeString(" ")
	p.writeName(ty.Name)
	if len(ty.Params) > 0 {
		p.writeString("<")
		p.writeParams(ty)
		p.writeString(">")
	}
}

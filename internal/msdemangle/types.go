// Package msdemangle implements a recursive-descent parser and two-pass
// printer for the Microsoft Visual C++ symbol mangling scheme. It parses a
// mangled symbol into a Type AST and a Name Path, then renders that AST back
// as a conventional C++ declaration.
package msdemangle

// PrimKind is the tag of a Type node.
type PrimKind uint8

const (
	Unknown PrimKind = iota
	None             // structor return type: no return type is printed
	Function
	Ptr
	Ref
	Array

	Struct
	Union
	Class
	Enum

	Void
	Bool
	Char
	Schar
	Uchar
	Short
	Ushort
	Int
	Uint
	Long
	Ulong
	Llong
	Ullong
	Wchar
	Float
	Double
	Ldouble
)

// StorageClass is a bitset of C++ type qualifiers.
type StorageClass uint8

const (
	Const StorageClass = 1 << iota
	Volatile
	Far
	Huge      // reserved: not produced by the parser (spec Open Question iii)
	Unaligned // reserved
	Restrict  // reserved
)

// CallingConv identifies a function's ABI calling convention.
type CallingConv uint8

const (
	Cdecl CallingConv = iota
	Pascal
	Thiscall
	Stdcall
	Fastcall
	Regcall // reserved: not produced by the parser
)

// FuncClass is a bitset describing a member function's access and lifetime.
type FuncClass uint8

const (
	Public FuncClass = 1 << iota
	Protected
	Private
	Global
	Static
	Virtual
	FFar
)

// NamePath is an ordered sequence of identifier fragments, stored
// innermost-first: for A::B::C::foo, NamePath is [foo, C, B, A].
type NamePath []string

// Type is a node in the AST produced by the parser and consumed by the
// printer. See spec.md §3.1 for field semantics.
type Type struct {
	Prim   PrimKind
	SClass StorageClass

	// Ptr holds the pointee (Ptr/Ref), the next inner array dimension
	// (Array), or the return type (Function). Nil otherwise.
	Ptr *Type

	CallingConv CallingConv // valid iff Prim == Function
	FuncClass   FuncClass   // valid iff Prim == Function and the function is a member

	Len int32 // array dimension length; valid iff Prim == Array

	Name NamePath // valid iff Prim is one of Struct, Union, Class, Enum

	// Params holds function parameters (Prim == Function) or template
	// arguments (Prim is one of Struct, Union, Class and the name is a
	// template instantiation).
	Params []*Type
}

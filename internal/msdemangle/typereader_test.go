package msdemangle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadVarTypePointer(t *testing.T) {
	d := newDemangler("PAH")
	var got Type
	d.readVarType(&got)
	if d.failed() {
		t.Fatalf("readVarType failed: %v", d.err)
	}
	want := Type{Prim: Ptr, Ptr: &Type{Prim: Int}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readVarType(\"PAH\") mismatch (-want +got):\n%s", diff)
	}
}

func TestReadVarTypeConstPointer(t *testing.T) {
	d := newDemangler("QAH")
	var got Type
	d.readVarType(&got)
	if d.failed() {
		t.Fatalf("readVarType failed: %v", d.err)
	}
	want := Type{Prim: Ptr, SClass: Const, Ptr: &Type{Prim: Int}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readVarType(\"QAH\") mismatch (-want +got):\n%s", diff)
	}
}

func TestReadVarTypePointerToFunction(t *testing.T) {
	d := newDemangler("P6AHH@Z")
	var got Type
	d.readVarType(&got)
	if d.failed() {
		t.Fatalf("readVarType failed: %v", d.err)
	}
	want := Type{
		Prim: Ptr,
		Ptr: &Type{
			Prim:   Function,
			Ptr:    &Type{Prim: Int},
			Params: []*Type{{Prim: Int}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readVarType pointer-to-function mismatch (-want +got):\n%s", diff)
	}
}

func TestReadVarTypeTemplateClass(t *testing.T) {
	d := newDemangler("V?$Foo@H@@")
	var got Type
	d.readVarType(&got)
	if d.failed() {
		t.Fatalf("readVarType failed: %v", d.err)
	}
	want := Type{
		Prim:   Class,
		Name:   NamePath{"Foo"},
		Params: []*Type{{Prim: Int}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readVarType template class mismatch (-want +got):\n%s", diff)
	}
}

func TestReadVarTypeArray(t *testing.T) {
	// Y01H: 1 dimension of length 2, element type int.
	d := newDemangler("Y01H")
	var got Type
	d.readVarType(&got)
	if d.failed() {
		t.Fatalf("readVarType failed: %v", d.err)
	}
	want := Type{Prim: Array, Len: 2, Ptr: &Type{Prim: Int}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readVarType array mismatch (-want +got):\n%s", diff)
	}
}

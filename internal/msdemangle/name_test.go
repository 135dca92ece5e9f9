package msdemangle

import "testing"

func TestReadNamePathFragments(t *testing.T) {
	d := newDemangler("foo@C@B@A@@")
	path := d.readNamePath()
	if d.failed() {
		t.Fatalf("readNamePath failed: %v", d.err)
	}
	want := NamePath{"foo", "C", "B", "A"}
	if len(path) != len(want) {
		t.Fatalf("readNamePath = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, path[i], want[i])
		}
	}
}

func TestReadNamePathBackReference(t *testing.T) {
	// "foo@0@@" : first fragment "foo", second fragment is back-ref 0 -> "foo".
	d := newDemangler("foo@0@@")
	path := d.readNamePath()
	if d.failed() {
		t.Fatalf("readNamePath failed: %v", d.err)
	}
	want := NamePath{"foo", "foo"}
	if len(path) != 2 || path[0] != want[0] || path[1] != want[1] {
		t.Errorf("path = %v, want %v", path, want)
	}
}

func TestReadNamePathBackReferenceOutOfRange(t *testing.T) {
	d := newDemangler("5@@")
	d.readNamePath()
	if !d.failed() {
		t.Fatalf("expected ErrBadBackRef for an empty back-reference table")
	}
}

func TestReadNamePathBackReferenceCapAtTen(t *testing.T) {
	// 11 distinct fragments: only the first 10 are retained as back-references.
	d := newDemangler("a@b@c@d@e@f@g@h@i@j@k@@")
	path := d.readNamePath()
	if d.failed() {
		t.Fatalf("readNamePath failed: %v", d.err)
	}
	if len(path) != 11 {
		t.Fatalf("len(path) = %d, want 11", len(path))
	}
	if len(d.nameBackRefs) != maxBackRefs {
		t.Errorf("len(nameBackRefs) = %d, want %d", len(d.nameBackRefs), maxBackRefs)
	}
}

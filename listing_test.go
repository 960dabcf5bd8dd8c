package turtle

import "testing"

func TestListing(t *testing.T) {
	root := NewSequence(
		NewLeaf(Jump(220, 220)),
		NewSequence(NewLeaf(Move(40)), NewLeaf(Rotate(1.57))),
		NewLeaf(SetColor(ColorRed)),
	)
	want := "seq {\n" +
		"  jump(220,220)\n" +
		"  seq {\n" +
		"    move(40)\n" +
		"    rotate(1.57)\n" +
		"  }\n" +
		"  setColor(255,0,0)\n" +
		"}\n"
	if got := Listing(root); got != want {
		t.Errorf("Listing =\n%s\nwant\n%s", got, want)
	}
}

func TestListingNilRoot(t *testing.T) {
	if got := Listing(nil); got != "" {
		t.Errorf("Listing(nil) = %q, want empty", got)
	}
}

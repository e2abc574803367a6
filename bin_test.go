package digitbin

import "testing"

func TestBinInsertRemoveLen(t *testing.T) {
	b := newBin()

	if ok := b.insert(5); !ok {
		t.Fatal("insert(5) on empty bin should report a change")
	}
	if ok := b.insert(5); ok {
		t.Fatal("re-insert of 5 should be a no-op")
	}
	if b.len() != 1 {
		t.Fatalf("len() = %d, want 1", b.len())
	}
	if !b.contains(5) {
		t.Fatal("contains(5) = false, want true")
	}

	if ok := b.remove(5); !ok {
		t.Fatal("remove(5) should report a change")
	}
	if ok := b.remove(5); ok {
		t.Fatal("remove of absent id should be a no-op")
	}
	if b.len() != 0 {
		t.Fatalf("len() = %d, want 0", b.len())
	}
}

func TestBinSelectRankAscending(t *testing.T) {
	b := newBin()
	ids := []uint64{40, 10, 30, 20}
	for _, id := range ids {
		b.insert(id)
	}

	want := []uint64{10, 20, 30, 40}
	for r, w := range want {
		if got := b.selectRank(r); got != w {
			t.Fatalf("selectRank(%d) = %d, want %d", r, got, w)
		}
	}
}

func TestBinRemoveMany(t *testing.T) {
	b := newBin()
	for _, id := range []uint64{1, 2, 3, 4, 5} {
		b.insert(id)
	}

	removed := b.removeMany([]uint64{2, 4, 99})
	if removed != 2 {
		t.Fatalf("removeMany removed = %d, want 2", removed)
	}
	if b.len() != 3 {
		t.Fatalf("len() = %d, want 3", b.len())
	}
	for _, id := range []uint64{2, 4} {
		if b.contains(id) {
			t.Fatalf("bin still contains removed id %d", id)
		}
	}
}

func TestBinEnumerateAscending(t *testing.T) {
	b := newBin()
	for _, id := range []uint64{7, 3, 9, 1} {
		b.insert(id)
	}

	got := b.enumerate()
	want := []uint64{1, 3, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("enumerate() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("enumerate() = %v, want %v", got, want)
		}
	}
}

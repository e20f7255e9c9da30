package bvh

import "testing"

func box(minX, minY, maxX, maxY float64) AABB {
	return AABB{Min: [3]float64{minX, minY, 0}, Max: [3]float64{maxX, maxY, 0}}
}

func TestInsertAndQuery(t *testing.T) {
	tree := New[string](0.1)
	a := tree.Insert(box(0, 0, 1, 1), "a")
	tree.Insert(box(5, 5, 6, 6), "b")

	var found []string
	tree.Query(box(-1, -1, 2, 2), func(handle int, item string) bool {
		found = append(found, item)
		return true
	})

	if len(found) != 1 || found[0] != "a" {
		t.Fatalf("expected only %q to overlap query box, got %v", "a", found)
	}
	if tree.Item(a) != "a" {
		t.Fatalf("Item(%d) = %q, want %q", a, tree.Item(a), "a")
	}
}

func TestRemoveShrinksTree(t *testing.T) {
	tree := New[int](0)
	h1 := tree.Insert(box(0, 0, 1, 1), 1)
	h2 := tree.Insert(box(2, 2, 3, 3), 2)

	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tree.Len())
	}
	tree.Remove(h1)
	if tree.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after remove", tree.Len())
	}

	var found []int
	tree.Query(box(-10, -10, 10, 10), func(handle int, item int) bool {
		found = append(found, item)
		return true
	})
	if len(found) != 1 || found[0] != 2 {
		t.Fatalf("expected only item 2 left, got %v", found)
	}
	_ = h2
}

func TestUpdateWithinMarginIsNoop(t *testing.T) {
	tree := New[int](1.0)
	h := tree.Insert(box(0, 0, 1, 1), 1)
	moved := tree.Update(h, box(0.1, 0.1, 1.1, 1.1))
	if moved {
		t.Fatalf("Update within fattened margin should not reinsert")
	}
	moved = tree.Update(h, box(100, 100, 101, 101))
	if !moved {
		t.Fatalf("Update far outside margin should reinsert")
	}
}

func TestForEachOverlappingPair(t *testing.T) {
	tree := New[string](0)
	tree.Insert(box(0, 0, 2, 2), "a")
	tree.Insert(box(1, 1, 3, 3), "b")
	tree.Insert(box(10, 10, 11, 11), "c")

	pairs := 0
	tree.ForEachOverlappingPair(func(hA, hB int, a, b string) bool {
		pairs++
		return true
	})
	if pairs != 1 {
		t.Fatalf("expected exactly 1 overlapping pair, got %d", pairs)
	}
}

package component

import "testing"

func TestItemQueueFIFOAndEviction(t *testing.T) {
	var q ItemQueue
	for _, k := range []ItemKind{ItemHeal, ItemGrenade, ItemLaser} {
		if ev, ok := q.Push(k); ok {
			t.Fatalf("unexpected eviction of %v", ev)
		}
	}
	ev, ok := q.Push(ItemHeal)
	if !ok || ev != ItemHeal {
		t.Fatalf("evicted %v, %v; want heal", ev, ok)
	}
	want := []ItemKind{ItemGrenade, ItemLaser, ItemHeal}
	got := q.Items()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items %v, want %v", got, want)
		}
	}

	for _, w := range want {
		k, ok := q.Pop()
		if !ok || k != w {
			t.Fatalf("pop %v, %v; want %v", k, ok, w)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop from empty queue")
	}
	if _, ok := q.Peek(); ok {
		t.Fatal("peek on empty queue")
	}
}

func TestItemQueueClear(t *testing.T) {
	var q ItemQueue
	q.Push(ItemLaser)
	q.Push(ItemHeal)
	q.Clear()
	if q.Len() != 0 || len(q.Items()) != 0 {
		t.Fatalf("queue not empty after clear: %v", q.Items())
	}
}

package scratch

import "testing"

func TestPoolGetSplit(t *testing.T) {
	p := NewPool()

	b := p.Get(3, 2)
	if len(b.data) != 5 {
		t.Fatalf("len = %d, want 5", len(b.data))
	}

	parts := b.Split(3, 2)
	if len(parts[0]) != 3 || len(parts[1]) != 2 {
		t.Fatalf("Split lengths = %d,%d, want 3,2", len(parts[0]), len(parts[1]))
	}

	parts[0][2] = 7
	parts[1][0] = 9
	if b.data[2] != 7 || b.data[3] != 9 {
		t.Fatal("Split slices must alias the buffer")
	}

	parts[0] = append(parts[0], 1)
	if b.data[3] != 9 {
		t.Fatal("appending to a part must not overwrite the next part")
	}
	p.Put(b)
}

func TestPoolGetIsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(4)
	for i := range b.data {
		b.data[i] = float64(i + 1)
	}
	p.Put(b)

	for range 4 {
		b = p.Get(4)
		for i, v := range b.data {
			if v != 0 {
				t.Fatalf("data[%d] = %v, want 0", i, v)
			}
		}
		p.Put(b)
	}
}

func TestPoolPutNil(t *testing.T) {
	NewPool().Put(nil)
}

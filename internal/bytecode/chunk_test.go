/******************************************************************************\
* golox                                                                       *
\******************************************************************************/

package bytecode

import "testing"

func TestChunkWriteInvariants(t *testing.T) {
	c := NewChunk()
	for i := 0; i < 20; i++ {
		c.Write(byte(i), i/2)
	}

	if c.Count != 20 {
		t.Fatalf("Count = %d, want 20", c.Count)
	}
	if len(c.Code) != c.Count || len(c.Lines) != c.Count {
		t.Fatalf("len(Code)=%d len(Lines)=%d Count=%d, want all equal", len(c.Code), len(c.Lines), c.Count)
	}
	for i := 0; i < 20; i++ {
		if c.Code[i] != byte(i) {
			t.Fatalf("Code[%d] = %d, want %d", i, c.Code[i], i)
		}
		if c.Lines[i] != i/2 {
			t.Fatalf("Lines[%d] = %d, want %d", i, c.Lines[i], i/2)
		}
	}
}

func TestAddConstantReturnsIndex(t *testing.T) {
	c := NewChunk()
	i0 := c.AddConstant(NumberValue(1))
	i1 := c.AddConstant(NumberValue(2))

	if i0 != 0 || i1 != 1 {
		t.Fatalf("indices = %d, %d, want 0, 1", i0, i1)
	}
	if c.Constants[i0].Number != 1 || c.Constants[i1].Number != 2 {
		t.Fatalf("constants not retrievable at their returned indices")
	}
}

func TestChunkFreeResetsToEmpty(t *testing.T) {
	c := NewChunk()
	c.Write(1, 1)
	c.AddConstant(NumberValue(1))

	c.Free()

	if c.Count != 0 || len(c.Code) != 0 || c.capacity != 0 {
		t.Fatalf("Free did not reset chunk to empty state")
	}
}

func TestCapacityGrowthFloorAndDoubling(t *testing.T) {
	c := NewChunk()
	c.Write(0, 1)
	if c.capacity != minCapacity {
		t.Fatalf("capacity after first write = %d, want floor %d", c.capacity, minCapacity)
	}

	for i := 1; i < minCapacity; i++ {
		c.Write(0, 1)
	}
	if c.capacity != minCapacity {
		t.Fatalf("capacity = %d, want still %d after filling the floor", c.capacity, minCapacity)
	}

	c.Write(0, 1)
	if c.capacity != minCapacity*2 {
		t.Fatalf("capacity after exceeding floor = %d, want %d", c.capacity, minCapacity*2)
	}
}

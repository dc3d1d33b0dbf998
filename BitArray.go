package Go_Aggregates

import (
	"math/bits"
)

// New BitArray that holds at least size bits, all down.
func New(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size bit set. The zero value holds no bits.
type BitArray struct {
	bits []uint
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

// Take reports whether bit i was up and puts it down.
func (u BitArray) Take(i int) bool {
	w, m := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	was := *w&m != 0
	*w &^= m
	return was
}

// Count of bits that are up.
func (u BitArray) Count() (n int) {
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return
}


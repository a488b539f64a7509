package gamemap

// IDAllocator hands out hex serial numbers. Each Grid owns one unless a
// shared allocator is injected with WithIDAllocator.
type IDAllocator struct {
	next uint64
}

// NewIDAllocator returns an allocator whose first serial is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns the next serial number.
func (a *IDAllocator) Next() uint64 {
	if a.next == 0 {
		a.next = 1
	}
	id := a.next
	a.next++
	return id
}

// Reset restarts the sequence at 1.
func (a *IDAllocator) Reset() { a.next = 1 }

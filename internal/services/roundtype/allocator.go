package roundtype

// idAllocator hands out increasing round type IDs. It is guarded by the
// registry's mutex.
type idAllocator struct {
	next int
}

func (a *idAllocator) allocate() int {
	id := a.next
	a.next++
	return id
}

// reset must only be called when the catalog is emptied, otherwise IDs
// held by callers could collide with new entries
func (a *idAllocator) reset() {
	a.next = 0
}

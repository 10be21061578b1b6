// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set supports O(1) insertion, deletion, and membership testing
// while maintaining a dense list of elements. It's particularly useful for
// tracking which row-equivalence-class ids are already witnessed by an
// observation table's access-string set, without a map lookup per check.
package sparse

// SparseSet is a set of uint32 values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense
// array (for iteration). The sparse array maps values to indices in the
// dense array.
//
// The universe of possible values (capacity) may grow over time via Grow,
// since an observation table's row-group ids are not known in advance the
// way an NFA's state count is known before a search begins.
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values
	size   uint32   // Current number of elements
}

// NewSparseSet creates a new sparse set with the given initial capacity
// (values 0..capacity-1). Insert grows the capacity for larger values.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Grow extends the set's capacity to at least newCapacity.
// Existing elements and their membership are preserved. It is a no-op if
// the set already has sufficient capacity.
func (s *SparseSet) Grow(newCapacity uint32) {
	if uint32(len(s.sparse)) >= newCapacity {
		return
	}
	grown := make([]uint32, newCapacity)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Insert adds a value to the set.
// If the value is already present, this is a no-op.
// Grows capacity automatically if value is out of range.
func (s *SparseSet) Insert(value uint32) {
	if value >= uint32(len(s.sparse)) {
		s.Grow(value + 1)
	}
	if s.Contains(value) {
		return
	}

	// Add to dense array
	s.dense = append(s.dense, value)
	// Map value to its index in dense
	s.sparse[value] = s.size
	s.size++
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	// Bounds check: value must be within sparse array bounds
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if value >= sparseLen {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove removes a value from the set.
// If the value is not present, this is a no-op.
func (s *SparseSet) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}

	// Get index of value in dense array
	idx := s.sparse[value]

	// Move last element to this position (swap and pop)
	lastValue := s.dense[s.size-1]
	s.dense[idx] = lastValue
	s.sparse[lastValue] = idx

	s.size--
	s.dense = s.dense[:s.size]
}

// Clear removes all elements from the set in O(1) time
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of elements in the set
func (s *SparseSet) Size() int {
	return int(s.size)
}

// IsEmpty returns true if the set contains no elements
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns a slice of all values in the set.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Iter calls the given function for each value in the set.
// The iteration order is unspecified.
func (s *SparseSet) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

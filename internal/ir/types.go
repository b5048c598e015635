package ir

// Set is an unordered collection of distinct values.
// It is a map, so copies of a Set share the same storage.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set containing the given elements
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element into the set
func (s Set[T]) Add(elem T) {
	s[elem] = struct{}{}
}

// Remove deletes an element from the set
func (s Set[T]) Remove(elem T) {
	delete(s, elem)
}

// Contains reports whether the set contains the element
func (s Set[T]) Contains(elem T) bool {
	_, ok := s[elem]
	return ok
}

// Len returns the number of elements in the set
func (s Set[T]) Len() int {
	return len(s)
}

// Elements returns the elements of the set in no particular order
func (s Set[T]) Elements() []T {
	elems := make([]T, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	return elems
}

// Clone returns an independent copy of the set
func (s Set[T]) Clone() Set[T] {
	c := make(Set[T], len(s))
	for e := range s {
		c[e] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same elements
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// TransitionMap is a sparse two-level transition table: state -> symbol -> next state
type TransitionMap[S, A comparable] map[S]map[A]S

// NewTransitionMap creates an empty transition table
func NewTransitionMap[S, A comparable]() TransitionMap[S, A] {
	return make(TransitionMap[S, A])
}

// Lookup returns the destination for (from, symbol), if one is defined
func (m TransitionMap[S, A]) Lookup(from S, symbol A) (S, bool) {
	row, ok := m[from]
	if !ok {
		var zero S
		return zero, false
	}
	to, ok := row[symbol]
	return to, ok
}

// Put stores from --symbol--> to, replacing any previous destination
func (m TransitionMap[S, A]) Put(from S, symbol A, to S) {
	if row, ok := m[from]; ok {
		row[symbol] = to
		return
	}
	m[from] = map[A]S{symbol: to}
}

// Len returns the number of (state, symbol) entries in the table
func (m TransitionMap[S, A]) Len() int {
	n := 0
	for _, row := range m {
		n += len(row)
	}
	return n
}

// Clone returns a deep copy of the table
func (m TransitionMap[S, A]) Clone() TransitionMap[S, A] {
	c := make(TransitionMap[S, A], len(m))
	for from, row := range m {
		r := make(map[A]S, len(row))
		for symbol, to := range row {
			r[symbol] = to
		}
		c[from] = r
	}
	return c
}

// Transition is a single entry of the transition table
type Transition[S, A comparable] struct {
	From   S
	Symbol A
	To     S
}

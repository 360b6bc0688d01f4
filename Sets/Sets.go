package Sets

// Set is a collection of distinct elements.
type Set[E any] interface {
	//Put e in the set. Returns true if e wasn't in the set.
	Put(E) bool
	//Has e in the set.
	Has(E) bool
	//Remove e from the set. Returns true if e was in the set.
	Remove(E) bool
	//Size is the number of elements.
	Size() uint
	//Take returns an element of the set without removing it, the zero value if the set is empty.
	Take() E
	//Range calls f on every element until f returns false.
	Range(func(E) bool)
}

// ExtendedSet has the operations involving a whole other Set.
type ExtendedSet[E any] interface {
	//PutAll the elements of s. Returns the number of elements added.
	PutAll(Set[E]) uint
	//RemoveAll the elements of s. Returns the number of elements removed.
	RemoveAll(Set[E]) uint
	//Eq returns true if both sets have the same elements.
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	//Filter returns a new set with the elements for which f returns true.
	Filter(func(E) bool) ExtendedSet[E]
}

/*
Package rlevec implements a run-length encoded vector. It defines the type
Vec, a generic container that stores a logical sequence of values as runs of
consecutive equal values, while keeping random access, mutation and iteration
semantics close to those of a plain slice.

When the data consists of long stretches of identical values, storing one
descriptor per stretch instead of one element per position can shrink memory
use considerably. The price is paid on access: locating an arbitrary index
requires a binary search over the stored runs. The complexities below are part
of the contract of the type, with n equal to the number of runs, not the
logical length:

	Push                     O(1) amortized
	At                       O(log n)
	Set without breaking     O(log n)
	Set breaking a run       O(log n + n)
	Insert                   O(log n + n)
	Remove                   O(log n + n)

A Vec has a single owner and is not safe for concurrent use. Iterators and
Readers obtained from a Vec read it in place and are only valid until the next
mutation; using one after the vector changed is detected and reported at the
next advance.

Methods returning a contiguous view of the logical sequence cannot exist on a
compressed representation. ToSlice materializes a copy instead.
*/
package rlevec

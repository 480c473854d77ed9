// Package cmp implements the element-wise relational operators (equal,
// not_equal, less, less_equal, greater, greater_equal) over strided numeric
// buffers, producing a byte-per-element boolean output.
//
// The engine is stateless: each call receives three operand descriptors
// (base pointer and byte stride for two inputs and the output) plus an
// element count, borrows those buffers for the duration of the call, and
// allocates nothing. Per call it picks one of four paths: a fully
// vectorized loop for contiguous operands, one of two scalar-broadcast
// vector loops when an input has stride 0, or a strided scalar loop that
// handles every remaining shape, including outputs that alias an input.
//
// Before dispatch, each (type, operator) pair is canonicalized onto a
// minimal kernel set: greater/greater_equal are rewritten as
// less/less_equal with swapped operands, and integer equal/not_equal use
// the unsigned kernel of the same width. The canonical loops register
// themselves under "<TYPE>_<operator>" names in the dispatch package.
package cmp

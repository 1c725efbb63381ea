//go:build 386 || arm || mips || mipsle || wasm || nounroll

package stats

// GroupSize is the number of elements each pass handles per loop iteration.
// Constrained targets walk the input one element at a time.
const GroupSize = 1

//go:build !386 && !arm && !mips && !mipsle && !wasm && !nounroll

package stats

// GroupSize is the number of elements each pass handles per loop iteration.
// 64-bit targets have enough registers to keep four loads in flight.
const GroupSize = 4

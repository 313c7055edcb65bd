//go:build amd64

package radix

import "golang.org/x/sys/cpu"

// simdCapable reports whether the running CPU has the 512-bit vector ISA
// spec.md §6 requires: byte/word/dword/qword comparisons, masked
// compress-store, mask-NOT and hardware popcnt. AVX-512F (foundation) plus
// AVX-512BW (byte/word operations) cover that set on amd64.
//
// Ground truth for the detection style: janpfeifer-go-highway's
// dispatch_amd64.go, which also gates on golang.org/x/sys/cpu feature
// flags rather than assuming a feature from the GOARCH alone.
func simdCapable() bool {
	return cpu.X86.HasAVX512 && cpu.X86.HasAVX512BW && cpu.X86.HasPOPCNT
}

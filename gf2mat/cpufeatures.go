package gf2mat

import (
	"log/slog"
	"sync"

	"golang.org/x/sys/cpu"
)

var warnMissingVectorXOROnce sync.Once

// vectorXORAvailable reports whether the running CPU exposes a vector
// XOR instruction set (SSE2 or AVX2), the hardware baseline spec.md's
// environment section assumes. The bit-slice primitives in bits.go are
// written as plain byte-at-a-time and uint64-at-a-time XOR loops that
// the Go compiler lowers onto whatever vector units the target actually
// has; this check exists only to surface, once, a platform that can't
// back that lowering with real SIMD, not to change any code path.
func vectorXORAvailable() bool {
	avail := cpu.X86.HasSSE2 || cpu.X86.HasAVX2
	if !avail {
		warnMissingVectorXOROnce.Do(func() {
			slog.Warn("gf2mat: no SSE2/AVX2 detected, XOR throughput will be scalar",
				"sse2", cpu.X86.HasSSE2, "avx2", cpu.X86.HasAVX2)
		})
	}
	return avail
}

func init() {
	vectorXORAvailable()
}

package core

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/cpu"
)

// LogCPUFeatures logs, at debug level, whether the running CPU has the
// vector extensions a tuned build of the distance loop could exploit. It is
// informational only: unlike the teacher's AVX gate, nothing in this
// package requires AVX2 to be present.
func LogCPUFeatures() {
	log.Debug().
		Bool("avx", cpu.X86.HasAVX).
		Bool("avx2", cpu.X86.HasAVX2).
		Msg("detected CPU vector extensions")
}

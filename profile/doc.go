// Package profile provides optional runtime profiling for lkcmdline.
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Profiler] is a no-op and [Modes] is empty, and the
// command line hides its --pprof-* flags.
//
// # Modes
//
// With the tag, [Modes] lists the modes backed by [github.com/pkg/profile]:
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread, and trace.
// Profiles are written to [Profiler.Path] and can be analyzed with
//
//	go tool pprof -http=: <path>/cpu.pprof
//
// The pprof build also registers the [net/http/pprof] handlers on
// [net/http.DefaultServeMux].
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`

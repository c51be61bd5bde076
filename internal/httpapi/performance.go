package httpapi

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/autosave-dev/autosave/internal/wire"
)

const bytesPerMB = 1024 * 1024

// handlePerformance reports process resource usage.
func (s *Server) handlePerformance(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Snapshot())
}

// Snapshot measures the current process. Time is the duration of the
// measurement itself.
func Snapshot() wire.PerformanceResponse {
	start := time.Now()
	mem := residentBytes()
	threads := pprof.Lookup("threadcreate").Count()
	elapsed := time.Since(start)

	return wire.PerformanceResponse{
		Time:    fmt.Sprintf("%.3f ms", float64(elapsed.Microseconds())/1000),
		Memory:  fmt.Sprintf("%.2f MB", float64(mem)/bytesPerMB),
		Threads: threads,
	}
}

// residentBytes returns the resident set size from /proc when available,
// otherwise the memory obtained from the OS by the Go runtime.
func residentBytes() uint64 {
	if data, err := os.ReadFile("/proc/self/statm"); err == nil {
		fields := strings.Fields(string(data))
		if len(fields) >= 2 {
			if pages, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
				return pages * uint64(os.Getpagesize())
			}
		}
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys
}

// package profiler tracks frame pacing and memory statistics for the game
// loop and reports them to the log at an interval.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, simulation step durations, and memory
// statistics. Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	stepTotal time.Duration
	stepMax   time.Duration
	stepCount int
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetInterval changes how often Tick logs. Non-positive intervals log on
// every Tick, which tests use to force output.
//
// Parameters:
//   - interval: the reporting interval
func (p *Profiler) SetInterval(interval time.Duration) {
	p.updateInterval = interval
}

// Observe records the duration of one simulation step for the next report's
// average and maximum.
//
// Parameters:
//   - step: the measured step duration
func (p *Profiler) Observe(step time.Duration) {
	p.stepTotal += step
	p.stepCount++
	if step > p.stepMax {
		p.stepMax = step
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed:
// FPS, average/max step time, heap usage, allocation rate, GC pauses, and
// total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	var stepAvg time.Duration
	if p.stepCount > 0 {
		stepAvg = p.stepTotal / time.Duration(p.stepCount)
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of live heap objects. TotalAlloc: cumulative allocation,
	// tracks churn. Sys: memory obtained from the OS.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Step: avg %s, max %s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max pause: %d µs) | Sys: %.2f MB",
		fps, stepAvg, p.stepMax, allocMB, allocRateMB, gcCount, maxPauseUs, sysMB)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.stepTotal = 0
	p.stepMax = 0
	p.stepCount = 0
	return true
}

package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, scene statistics, and memory usage for performance monitoring.
// Outputs stats to the log at a configurable interval. The render loop reports the cube
// count and transform composition time each frame; the most recent FPS value is kept
// readable so the HUD can display it between log ticks.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	cubeCount  int
	composeNs  int64
	fps        float64
	logEnabled bool
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second with logging enabled.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		logEnabled:     true,
	}
}

// SetLogging enables or disables the periodic log output. Frame counting and
// the FPS value keep updating either way, so the HUD stays accurate while
// the log remains quiet. Call before the frame loop starts.
//
// Parameters:
//   - enabled: true to log statistics at each update interval
func (p *Profiler) SetLogging(enabled bool) {
	p.logEnabled = enabled
}

// SetCubeCount records the number of cubes rendered in the current frame.
//
// Parameters:
//   - n: the cube count after subdivision at the current iteration depth
func (p *Profiler) SetCubeCount(n int) {
	p.cubeCount = n
}

// ObserveCompose accumulates time spent composing per-cube transform matrices.
// The logged value is the average per frame since the last report.
//
// Parameters:
//   - d: the duration of one frame's transform composition
func (p *Profiler) ObserveCompose(d time.Duration) {
	p.composeNs += d.Nanoseconds()
}

// FPS returns the frame rate computed at the most recent report.
// Returns 0 before the first full update interval has elapsed.
//
// Returns:
//   - float64: frames per second over the last reporting window
func (p *Profiler) FPS() float64 {
	return p.fps
}

// Tick should be called once per frame to track frame timing.
// Recomputes the FPS value each time the update interval elapses, and logs
// performance statistics when logging is enabled.
// Statistics include: FPS, cube count, compose time, heap usage, allocation rate, GC count/pause times.
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

	p.fps = float64(p.frameCount) / elapsed.Seconds()

	logged := false
	if p.logEnabled {
		composeMs := float64(p.composeNs) / float64(p.frameCount) / 1e6

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		// Calculate allocation rate (MB/sec)
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// Calculate GC pause stats (last pause and max recent pause)
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			// Find max pause since last tick
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

		log.Printf("[Profiler] FPS: %.2f | Cubes: %d | Compose: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			p.fps, p.cubeCount, composeMs, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		logged = true
	}

	p.frameCount = 0
	p.composeNs = 0
	p.lastTime = currentTime
	return logged
}

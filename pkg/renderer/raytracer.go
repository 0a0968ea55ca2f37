package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/mveron/gotracer/log"
	"github.com/mveron/gotracer/pkg/core"
)

// Encoding gamma for the output image.
const gamma = 2.2

var logger = log.New("renderer")

// Scene is the renderer's view of a scene: an intersection structure and a
// background for escaped rays. Implementations must be immutable for the
// duration of a render; they are shared read-only across all workers.
type Scene interface {
	BVH() core.Hitable
	Background() core.Background
}

// RayTracer renders a scene into an image by path tracing. It is a one-shot
// job descriptor: construct, optionally adjust seed/workers, then Render.
type RayTracer struct {
	width           int
	height          int
	samplesPerPixel int
	maxDepth        int
	camera          *Camera
	scene           Scene
	workers         int
	seed            int64
}

// NewRayTracer creates a render job. Panics on non-positive dimensions or
// sampling parameters.
func NewRayTracer(width, height, samplesPerPixel, maxDepth int, camera *Camera, scene Scene) *RayTracer {
	if width <= 0 || height <= 0 {
		panic("renderer: image dimensions must be positive")
	}
	if samplesPerPixel <= 0 {
		panic("renderer: samples per pixel must be positive")
	}
	if maxDepth <= 0 {
		panic("renderer: max depth must be positive")
	}
	if camera == nil || scene == nil {
		panic("renderer: camera and scene are required")
	}

	return &RayTracer{
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
		maxDepth:        maxDepth,
		camera:          camera,
		scene:           scene,
		workers:         runtime.NumCPU(),
		seed:            time.Now().UnixNano(),
	}
}

// SetSeed fixes the base seed of the per-worker random streams, making the
// render deterministic for a given worker count
func (rt *RayTracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetWorkers overrides the number of render workers (default: CPU count).
// Each worker renders one contiguous horizontal band.
func (rt *RayTracer) SetWorkers(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rt.workers = workers
}

// Width returns the width of the output image
func (rt *RayTracer) Width() int { return rt.width }

// Height returns the height of the output image
func (rt *RayTracer) Height() int { return rt.height }

// Render traces the full frame and returns the image with per-band
// statistics. The image rows are partitioned into one contiguous band per
// worker; workers run independently on read-only scene data and commit
// finished rows to the shared image under a lock, once per scanline. Render
// returns after every row has been written.
func (rt *RayTracer) Render() (*image.RGBA, FrameStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	stats := FrameStats{Bands: make([]BandStat, rt.workers)}

	logger.Infof("rendering %dx%d frame: %d samples/pixel, depth %d, %d workers",
		rt.width, rt.height, rt.samplesPerPixel, rt.maxDepth, rt.workers)

	var mu sync.Mutex
	var wg sync.WaitGroup
	start := time.Now()

	for band := 0; band < rt.workers; band++ {
		wg.Add(1)
		go func(band int) {
			defer wg.Done()

			// Independent stream per worker, offset from the base seed
			random := rand.New(rand.NewSource(rt.seed + int64(band)))
			rowStart := band * rt.height / rt.workers
			rowEnd := (band + 1) * rt.height / rt.workers
			bandStart := time.Now()

			line := make([]color.RGBA, rt.width)
			for y := rowStart; y < rowEnd; y++ {
				for x := 0; x < rt.width; x++ {
					line[x] = vec3ToColor(rt.pixel(x, y, random))
				}

				mu.Lock()
				for x, c := range line {
					img.SetRGBA(x, y, c)
				}
				mu.Unlock()
			}

			// Each worker writes only its own slot
			stats.Bands[band] = BandStat{
				Band:         band,
				RowStart:     rowStart,
				RowEnd:       rowEnd,
				FramePercent: 100 * float64(rowEnd-rowStart) / float64(rt.height),
				RenderTime:   time.Since(bandStart),
			}
			logger.Debugf("band %d finished rows [%d,%d) in %s",
				band, rowStart, rowEnd, time.Since(bandStart))
		}(band)
	}

	wg.Wait()
	stats.RenderTime = time.Since(start)
	logger.Infof("frame rendered in %s", stats.RenderTime)

	return img, stats
}

// pixel multisamples one pixel with jittered camera rays and averages the
// results. Image rows run top to bottom while the viewport t axis runs
// bottom to top, so the row is flipped.
func (rt *RayTracer) pixel(x, y int, random *rand.Rand) core.Vec3 {
	flippedY := rt.height - 1 - y

	accum := core.Vec3{}
	for sample := 0; sample < rt.samplesPerPixel; sample++ {
		u := (float64(x) + random.Float64()) / float64(rt.width)
		v := (float64(flippedY) + random.Float64()) / float64(rt.height)
		accum = accum.Add(rt.cast(rt.camera.GetRay(u, v, random), 0, random))
	}

	return accum.Multiply(1.0 / float64(rt.samplesPerPixel))
}

// cast computes the color carried by a ray via the path-tracing recurrence:
// emitted + attenuation * cast(scattered). Recursion is bounded by maxDepth;
// light beyond the bound is lost, the accepted bias of a bounded-depth
// tracer.
func (rt *RayTracer) cast(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth >= rt.maxDepth {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids self-intersection at the origin of
	// scattered rays
	hit, ok := rt.scene.BVH().Hit(ray, 0.001, math.Inf(1), random)
	if !ok {
		t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
		return rt.scene.Background().Color(t)
	}

	var emitted core.Vec3
	if emitter, isEmitter := hit.Material.(core.Emitter); isEmitter {
		emitted = emitter.Emitted(hit.U, hit.V, hit.Point)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.cast(scatter.Scattered, depth+1, random)))
}

// vec3ToColor converts a color vector to 8-bit RGBA with gamma encoding and
// clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(gamma).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

package colour

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// Quantizer reduces an image's pixel population into a bounded, weighted set
// of representative colours, sorted by weight descending.
type Quantizer interface {
	// Quantize extracts up to count representative colours from an image.
	Quantize(img image.Image, count int) ([]WeightedColor, error)
}

// Algorithm represents the colour quantization algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering with deterministic
	// histogram-peak seeding.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans}
}

// NewQuantizer creates a new Quantizer for the specified algorithm.
func NewQuantizer(alg Algorithm) (Quantizer, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansQuantizer(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// KMeansQuantizer implements colour quantization using k-means clustering.
//
// Centroid initialization is deterministic: seeds come from the most
// populated buckets of a coarse colour histogram, never from a random
// source, so identical input always yields identical clusters.
type KMeansQuantizer struct {
	maxIterations int
	convergence   float64
	maxSamples    int
}

// NewKMeansQuantizer creates a new KMeansQuantizer with default settings.
func NewKMeansQuantizer() *KMeansQuantizer {
	return &KMeansQuantizer{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    5000,
	}
}

// Quantize extracts up to count weighted colours from an image.
// Returns ErrEmptyPalette if the image contains no pixels.
func (q *KMeansQuantizer) Quantize(img image.Image, count int) ([]WeightedColor, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}

	samples := q.samplePixels(img)
	if len(samples) == 0 {
		return nil, ErrEmptyPalette
	}

	// Count distinct colours. When the image has no more distinct colours
	// than requested clusters, the exact histogram is the answer: no empty
	// clusters, no iteration.
	counts := make(map[RGB]int)
	for _, rgb := range samples {
		counts[rgb]++
	}
	if len(counts) <= count {
		return weightedFromCounts(counts, len(samples)), nil
	}

	centroids := q.seedCentroids(samples, counts, count)
	centroids, weights := q.cluster(samples, centroids)

	// Drop clusters that ended up with no members so every weight is in
	// (0, 1].
	result := make([]WeightedColor, 0, len(centroids))
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		result = append(result, WeightedColor{RGB: c.toRGB(), Weight: weights[i]})
	}
	if len(result) == 0 {
		return nil, ErrEmptyPalette
	}

	sortByWeight(result)
	return result, nil
}

// point3 represents a point in 3D RGB colour space.
type point3 struct {
	R, G, B float64
}

func (p point3) distance(other point3) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3) toRGB() RGB {
	clamp := func(v float64) uint8 {
		return uint8(math.Min(255, math.Max(0, math.Round(v))))
	}
	return RGB{R: clamp(p.R), G: clamp(p.G), B: clamp(p.B)}
}

func rgbToPoint(rgb RGB) point3 {
	return point3{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
}

// samplePixels reads pixels from the image at a fixed grid stride, bounding
// the sample count (and hence clustering cost) independently of the raw image
// resolution. The stride walk is deterministic.
func (q *KMeansQuantizer) samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	if totalPixels <= 0 {
		return nil
	}

	step := 1
	if totalPixels > q.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(q.maxSamples))), 1)
	}

	pixels := make([]RGB, 0, min(totalPixels, q.maxSamples+1))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, ToRGB(img.At(x, y)))
		}
	}
	return pixels
}

// histogram bucket resolution: 3 bits per channel, 512 buckets.
const bucketShift = 5

type bucket struct {
	key   uint32
	count int
	sum   point3
}

// seedCentroids picks the initial centroids from the k most populated buckets
// of a coarse colour histogram, each seed being that bucket's mean colour.
// Ties between equally populated buckets break on bucket key, so seeding is a
// pure function of the sample set.
func (q *KMeansQuantizer) seedCentroids(samples []RGB, counts map[RGB]int, k int) []point3 {
	acc := make(map[uint32]*bucket)
	for _, rgb := range samples {
		key := uint32(rgb.R>>bucketShift)<<10 | uint32(rgb.G>>bucketShift)<<5 | uint32(rgb.B>>bucketShift)
		b, ok := acc[key]
		if !ok {
			b = &bucket{key: key}
			acc[key] = b
		}
		b.count++
		b.sum.R += float64(rgb.R)
		b.sum.G += float64(rgb.G)
		b.sum.B += float64(rgb.B)
	}

	buckets := make([]*bucket, 0, len(acc))
	for _, b := range acc {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].key < buckets[j].key
	})

	centroids := make([]point3, 0, k)
	for _, b := range buckets {
		if len(centroids) == k {
			break
		}
		n := float64(b.count)
		centroids = append(centroids, point3{R: b.sum.R / n, G: b.sum.G / n, B: b.sum.B / n})
	}

	if len(centroids) < k {
		// Fewer populated buckets than clusters: top up with the most
		// frequent distinct colours not already chosen.
		type freq struct {
			rgb   RGB
			count int
		}
		distinct := make([]freq, 0, len(counts))
		for rgb, c := range counts {
			distinct = append(distinct, freq{rgb: rgb, count: c})
		}
		sort.Slice(distinct, func(i, j int) bool {
			if distinct[i].count != distinct[j].count {
				return distinct[i].count > distinct[j].count
			}
			return distinct[i].rgb.packed() < distinct[j].rgb.packed()
		})
		for _, f := range distinct {
			if len(centroids) == k {
				break
			}
			p := rgbToPoint(f.rgb)
			taken := false
			for _, c := range centroids {
				if c == p {
					taken = true
					break
				}
			}
			if !taken {
				centroids = append(centroids, p)
			}
		}
	}

	return centroids
}

// cluster runs the iterative assignment/update loop until the average
// centroid movement falls below the convergence tolerance or the iteration
// cap is reached. Failing to converge is not an error; the best-effort result
// is used.
func (q *KMeansQuantizer) cluster(samples []RGB, centroids []point3) ([]point3, []float64) {
	k := len(centroids)
	points := make([]point3, len(samples))
	for i, rgb := range samples {
		points[i] = rgbToPoint(rgb)
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < q.maxIterations; iter++ {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		// Recalculate centroids. Empty clusters keep their previous
		// centroid; reseeding them from a random point would break
		// determinism.
		sums := make([]point3, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			sums[c].R += p.R
			sums[c].G += p.G
			sums[c].B += p.B
			counts[c]++
		}

		totalMovement := 0.0
		for i := range centroids {
			if counts[i] == 0 {
				continue
			}
			n := float64(counts[i])
			next := point3{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
			totalMovement += centroids[i].distance(next)
			centroids[i] = next
		}

		if totalMovement/float64(k) < q.convergence {
			break
		}
	}

	// Final assignment against the settled centroids.
	weights := make([]float64, k)
	for _, p := range points {
		weights[nearestCentroid(p, centroids)]++
	}
	total := float64(len(points))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// nearestCentroid finds the index of the nearest centroid to a point.
// Equidistant centroids resolve to the lowest index.
func nearestCentroid(p point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		dist := p.distance(c)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}

// weightedFromCounts builds the weighted colour list straight from a distinct
// colour histogram.
func weightedFromCounts(counts map[RGB]int, total int) []WeightedColor {
	result := make([]WeightedColor, 0, len(counts))
	for rgb, c := range counts {
		result = append(result, WeightedColor{RGB: rgb, Weight: float64(c) / float64(total)})
	}
	sortByWeight(result)
	return result
}

// sortByWeight orders colours by weight descending, breaking ties on packed
// RGB ascending so the ordering is total and reproducible.
func sortByWeight(colors []WeightedColor) {
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Weight != colors[j].Weight {
			return colors[i].Weight > colors[j].Weight
		}
		return colors[i].RGB.packed() < colors[j].RGB.packed()
	})
}

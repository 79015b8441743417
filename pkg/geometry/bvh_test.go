package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

func randomSpheres(n int, seed int64) []Bounded {
	random := rand.New(rand.NewSource(seed))
	mat := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	shapes := make([]Bounded, n)
	for i := range shapes {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		shapes[i] = NewSphere(center, 0.2+random.Float64(), mat)
	}
	return shapes
}

func TestBVH_EmptyAndSingleShape(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, isHit := NewBVH(nil).Hit(ray, testInterval); isHit {
		t.Error("Empty BVH should never be hit")
	}

	single := NewBVH([]Bounded{NewSphere(core.Vec3{}, 1, material.NewLambertian(core.White))})
	hit, isHit := single.Hit(ray, testInterval)
	if !isHit || hit.T != 4 {
		t.Errorf("Expected hit at t=4, got %v %v", isHit, hit)
	}
}

func TestBVH_LeafThresholdBoundary(t *testing.T) {
	tests := []struct {
		name       string
		shapes     int
		singleLeaf bool
	}{
		{"at threshold", leafThreshold, true},
		{"above threshold", leafThreshold + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewBVH(randomSpheres(tt.shapes, 1)).getStats()
			if (stats.totalNodes == 1) != tt.singleLeaf {
				t.Errorf("Unexpected node count %d", stats.totalNodes)
			}
			if stats.totalShapes != tt.shapes {
				t.Errorf("Expected %d shapes in leaves, got %d", tt.shapes, stats.totalShapes)
			}
		})
	}
}

func TestBVH_MatchesList(t *testing.T) {
	shapes := randomSpheres(200, 42)
	objects := make([]Hittable, len(shapes))
	for i, s := range shapes {
		objects[i] = s
	}
	list := NewList(objects...)
	bvh := NewBVH(shapes)

	stats := bvh.getStats()
	if stats.totalShapes != 200 || stats.leafNodes < 2 {
		t.Fatalf("Unexpected BVH shape %+v", stats)
	}

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(random.Float64()*40-20, random.Float64()*40-20, random.Float64()*40-20)
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		ray := core.NewRay(origin, direction)

		listHit, listOk := list.Hit(ray, core.From(0.001))
		bvhHit, bvhOk := bvh.Hit(ray, core.From(0.001))
		if listOk != bvhOk {
			t.Fatalf("Ray %d: list hit %t, BVH hit %t", i, listOk, bvhOk)
		}
		if listOk && listHit.T != bvhHit.T {
			t.Fatalf("Ray %d: list t=%f, BVH t=%f", i, listHit.T, bvhHit.T)
		}
	}
}

func TestBVH_IdenticalCenters(t *testing.T) {
	// Concentric spheres cannot be split; they must land in one leaf
	shapes := make([]Bounded, 20)
	for i := range shapes {
		shapes[i] = NewSphere(core.Vec3{}, float64(i+1), material.NewLambertian(core.White))
	}
	bvh := NewBVH(shapes)
	if stats := bvh.getStats(); stats.totalNodes != 1 {
		t.Errorf("Expected a single leaf, got %+v", stats)
	}

	hit, isHit := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 50), core.NewVec3(0, 0, -1)), testInterval)
	if !isHit || hit.T != 30 {
		t.Errorf("Expected outermost sphere at t=30, got %v", hit)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	shapes := randomSpheres(50, 3)
	before := append([]Bounded(nil), shapes...)
	NewBVH(shapes)
	for i := range shapes {
		if shapes[i] != before[i] {
			t.Fatal("NewBVH must not reorder the caller's slice")
		}
	}
}

func TestAccelerate(t *testing.T) {
	small := NewList(NewSphere(core.Vec3{}, 1, material.NewLambertian(core.White)))
	if _, ok := Accelerate(small).(*List); !ok {
		t.Error("Small lists should not be wrapped")
	}

	large := NewList()
	for _, s := range randomSpheres(30, 5) {
		large.Add(s)
	}
	if _, ok := Accelerate(large).(*BVH); !ok {
		t.Error("Large sphere lists should become a BVH")
	}

	// A nested list has no bounds, so the list is kept
	large.Add(NewList())
	if _, ok := Accelerate(large).(*List); !ok {
		t.Error("Lists with unbounded members should not be wrapped")
	}
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	totalShapes int
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	var stats bvhStats
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	stats.maxDepth = max(stats.maxDepth, depth)

	if node.Shapes != nil {
		stats.leafNodes++
		stats.totalShapes += len(node.Shapes)
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}

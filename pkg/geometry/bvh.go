package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Bounded // Shapes for leaf nodes (nil for internal nodes)
}

// BVH is a Bounding Volume Hierarchy for fast ray-object intersection.
// It returns the same nearest hit as a List of the same shapes.
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Bounded) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Partitioning reorders the slice; keep the caller's order intact
	shapesCopy := make([]Bounded, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// Accelerate wraps list in a BVH when every object has bounds and the list
// is large enough to benefit. Otherwise the list itself is returned.
func Accelerate(list *List) Hittable {
	if list.Len() <= leafThreshold {
		return list
	}

	shapes := make([]Bounded, 0, list.Len())
	for _, object := range list.Objects() {
		bounded, ok := object.(Bounded)
		if !ok {
			return list
		}
		shapes = append(shapes, bounded)
	}
	return NewBVH(shapes)
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(shapes []Bounded) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	centers := core.NewAABBFromPoints(boundingBox.Center())
	for _, shape := range shapes[1:] {
		box := shape.BoundingBox()
		boundingBox = boundingBox.Union(box)
		centers = centers.Union(core.NewAABBFromPoints(box.Center()))
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	// Split the spread of centers in half along its longest axis
	axis := centers.LongestAxis()
	splitPos := centers.Axis(axis)
	left, right := partitionShapes(shapes, axis, splitPos)

	// All centers coincide: nothing to split
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// partitionShapes moves shapes whose center lies below splitPos to the front
func partitionShapes(shapes []Bounded, axis int, splitPos float64) ([]Bounded, []Bounded) {
	i := 0
	for j, shape := range shapes {
		if shape.BoundingBox().Axis(axis) < splitPos {
			shapes[i], shapes[j] = shapes[j], shapes[i]
			i++
		}
	}
	return shapes[:i], shapes[i:]
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, valid)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, valid) {
		return nil, false
	}

	var closestHit *material.HitRecord
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, valid); isHit {
				valid = valid.WithMax(hit.T)
				closestHit = hit
			}
		}
		return closestHit, closestHit != nil
	}

	for _, child := range []*BVHNode{node.Left, node.Right} {
		if hit, isHit := bvh.hitNode(child, ray, valid); isHit {
			valid = valid.WithMax(hit.T)
			closestHit = hit
		}
	}
	return closestHit, closestHit != nil
}

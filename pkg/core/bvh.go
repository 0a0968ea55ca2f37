package core

import (
	"math/rand"
	"sort"
)

// BVHNode is a node of a bounding volume hierarchy built once over the scene's
// hitables. Leaves hold a single primitive in left (right nil); internal nodes
// hold two children and cache the surrounding box of both. Immutable after
// construction.
type BVHNode struct {
	left   Hitable
	right  Hitable
	box    AABB
	hasBox bool
}

// NewBVH builds a BVH over the given hitables for rays with times in
// [time0, time1]. Each internal node sorts its objects along a randomly chosen
// axis and splits at the median. The input slice is not modified. An empty
// input yields a node that never hits anything.
func NewBVH(objects []Hitable, time0, time1 float64, random *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{}
	}

	// Copy so sorting doesn't reorder the caller's slice
	objectsCopy := make([]Hitable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1, random)
}

func buildBVH(objects []Hitable, time0, time1 float64, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	less := func(a, b Hitable) bool {
		boxA, okA := a.BoundingBox(time0, time1)
		boxB, okB := b.BoundingBox(time0, time1)
		// Boxless objects sort first; never a build failure
		if !okA || !okB {
			return true
		}
		return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.left = objects[0]
	case 2:
		if less(objects[0], objects[1]) {
			node.left, node.right = objects[0], objects[1]
		} else {
			node.left, node.right = objects[1], objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return less(objects[i], objects[j])
		})
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid], time0, time1, random)
		node.right = buildBVH(objects[mid:], time0, time1, random)
	}

	leftBox, leftOK := node.left.BoundingBox(time0, time1)
	if node.right == nil {
		node.box, node.hasBox = leftBox, leftOK
	} else if rightBox, rightOK := node.right.BoundingBox(time0, time1); leftOK && rightOK {
		node.box, node.hasBox = SurroundingBox(leftBox, rightBox), true
	}

	return node
}

// Hit returns the closest intersection in the subtree, pruning via the cached
// box. The right subtree is searched with tMax tightened to the left hit's
// distance, so a right hit is always the closer of the two.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool) {
	if !n.hasBox || !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var leftHit *HitRecord
	leftOK := false
	if n.left != nil {
		leftHit, leftOK = n.left.Hit(ray, tMin, tMax, random)
	}

	if n.right != nil {
		rightMax := tMax
		if leftOK {
			rightMax = leftHit.T
		}
		if rightHit, rightOK := n.right.Hit(ray, tMin, rightMax, random); rightOK {
			return rightHit, true
		}
	}

	return leftHit, leftOK
}

// BoundingBox returns the cached surrounding box of the subtree
func (n *BVHNode) BoundingBox(time0, time1 float64) (AABB, bool) {
	return n.box, n.hasBox
}

package gamemath

import "github.com/solarlune/resolv"

// Overlaps reports whether two objects' bounding boxes intersect. resolv's
// Check only reports objects sharing cells, so callers confirm with this.
func Overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// Center returns the centre of an object's bounding box.
func Center(obj *resolv.Object) (x, y float64) {
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

// MoveCenter places obj so its centre sits at (x, y) and refreshes its cells.
func MoveCenter(obj *resolv.Object, x, y float64) {
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

// DistanceSq is the squared distance between two object centres.
func DistanceSq(a, b *resolv.Object) float64 {
	ax, ay := Center(a)
	bx, by := Center(b)
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

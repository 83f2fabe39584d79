package geometry

// Distance returns the euclidean distance between two points
func Distance(a, b Vector) float64 {
	return a.Sub(b).Magnitude()
}

// WrapCoordinate moves value to the opposite side of [0, size] once it has
// left the interval by more than margin. Within the margin it is unchanged.
func WrapCoordinate(value, size, margin float64) float64 {
	if value < -margin {
		return size + margin
	}
	if value > size+margin {
		return -margin
	}
	return value
}

package routegpx

// Resolver converts an encoded location reference into coordinates.
// Full-length codes decode standalone. Shortened codes are recovered
// against anchor, which may be nil when no reference point is known;
// resolving a shortened code without an anchor is an EINVALID error.
type Resolver interface {
	Resolve(code string, anchor *Coordinates) (Coordinates, error)
}

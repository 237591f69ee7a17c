package dynstack

// Used returns the number of bytes between the start of the region and the
// cursor. This includes alignment padding and raw reservations.
func (r *Region) Used() int {
	return r.off
}

// Capacity returns the size of the backing buffer in bytes.
func (r *Region) Capacity() int {
	return len(r.buf)
}

// Peak returns the highest cursor position reached since the region was
// created or last Reset.
func (r *Region) Peak() int {
	return r.peak
}

// LiveBuffers returns the number of scoped buffers not yet released.
func (r *Region) LiveBuffers() int {
	return r.live
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the region has no capacity.
func (r *Region) Utilization() float64 {
	capacity := r.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(r.Used()) / float64(capacity)
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	return RegionMetrics{
		Used:        r.Used(),
		Remaining:   r.Remaining(),
		Capacity:    r.Capacity(),
		Peak:        r.Peak(),
		LiveBuffers: r.LiveBuffers(),
		Utilization: r.Utilization(),
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	Used        int     // Bytes between region start and cursor
	Remaining   int     // Bytes after the cursor
	Capacity    int     // Size of the backing buffer
	Peak        int     // High-water mark of Used
	LiveBuffers int     // Scoped buffers not yet released
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
}

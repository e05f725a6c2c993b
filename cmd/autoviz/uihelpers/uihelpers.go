// Package uihelpers holds pure layout math for the AutoViz viewer so it can
// be unit tested without a rendered UI.
package uihelpers

import "path/filepath"

// ComputeChartDimensions applies the width/height clamp rules used for the
// displayed chart. Input: desired raw width (e.g. window width). Returns
// clamped width and height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.55)
	if h < 320 {
		h = 320
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

// ComputePreviewColumnWidth spreads the preview table across the window,
// clamped so narrow tables stay readable and wide ones scroll.
func ComputePreviewColumnWidth(winW float32, columns int) int {
	if columns <= 0 {
		return 120
	}
	w := int(winW-40) / columns
	if w < 80 {
		w = 80
	}
	if w > 240 {
		w = 240
	}
	return w
}

// TruncatePath shortens a filesystem path for display, keeping the base name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}

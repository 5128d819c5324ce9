// Package sequence puts extracted components into reading order: rows top
// to bottom, and left to right within a row.
//
// Rows are not detected. A component's row is its top edge divided by a
// fixed row height, so components whose tops are within the same band sort
// together. Sheets with an irregular row pitch can come out misordered.
package sequence

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"badc0de.net/pkg/go-spriteslice/extract"
)

const (
	// DefaultRowHeight is the band height used unless told otherwise.
	DefaultRowHeight = 20

	// Auto asks Sort to derive the row height with EstimateRowHeight.
	Auto = 0
)

// Sort orders cs in place by (MinY/rowHeight, MinX). Exact ties keep their
// relative order. It returns the row height that was applied.
func Sort(cs []extract.Component, rowHeight int) int {
	switch {
	case rowHeight == Auto:
		rowHeight = EstimateRowHeight(cs)
	case rowHeight < 0:
		rowHeight = DefaultRowHeight
	}
	sort.SliceStable(cs, func(i, j int) bool {
		ri, rj := cs[i].MinY/rowHeight, cs[j].MinY/rowHeight
		if ri != rj {
			return ri < rj
		}
		return cs[i].MinX < cs[j].MinX
	})
	return rowHeight
}

// EstimateRowHeight returns the median bounding box height of cs, or
// DefaultRowHeight when cs is empty.
func EstimateRowHeight(cs []extract.Component) int {
	if len(cs) == 0 {
		return DefaultRowHeight
	}
	heights := make([]float64, len(cs))
	for i, c := range cs {
		heights[i] = float64(c.Size().Y)
	}
	sort.Float64s(heights)
	h := int(math.Round(stat.Quantile(0.5, stat.Empirical, heights, nil)))
	if h < 1 {
		h = 1
	}
	return h
}

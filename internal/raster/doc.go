package raster

// Package raster holds the RGBA drawing primitives shared by the timeline strips
// and the Gantt chart: filled rectangles with alpha, thin lines and text.
// Coordinates are device pixels; callers convert from logical units.

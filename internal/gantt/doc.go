package gantt

// Package gantt composes the virtualized Gantt chart: task rows flattened from
// the project hierarchy, bars placed through the timeline coordinate mapper,
// composite bars for groups, weekend/today/week overlays, and an independent
// zoom level driven by ctrl+wheel and keyboard shortcuts that keeps the point
// under the cursor fixed.

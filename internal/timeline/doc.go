package timeline

// Package timeline implements the date/pixel viewport engine behind the planner
// header: coordinate mapping between calendar days and horizontal pixels, the
// range buffer that materialises an effectively unbounded date axis, month and
// day cell generation, month snapping, and frame-driven animation of scroll
// offset and scale. The engine never touches a window directly; it draws into
// RGBA images and is driven by an injected Clock and FrameScheduler so the UI
// layer (or a test) decides when frames and timers fire.

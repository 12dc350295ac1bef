package launcher

// Package launcher wires configuration, logging, the project store and the
// UI together. Both entry points call Run.

package model

// Package model defines the data structures shared by the generation pipeline:
// template tiers, library choices, generation requests and results, the
// submission state enum and the GenerationError taxonomy. Structures are plain
// values so the controller can snapshot them for the UI.

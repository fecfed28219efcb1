package download

// Package download saves generated archives. A payload is first written to a
// transient staging file next to its destination and then moved to a
// collision-free name in the download directory. The staging file never
// outlives a Download call.

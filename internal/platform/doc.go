package platform

// Package platform contains OS integration glue: download directory
// discovery, collision-free file naming, and revealing saved archives in the
// system file manager.

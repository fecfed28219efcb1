package download

// Downloader defines the interface for the download service.
type Downloader interface {
	// Download saves payload under filename and returns the final path
	Download(payload []byte, filename string) (string, error)

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)

	// SetAutoReveal enables revealing saved files in the system file manager
	SetAutoReveal(enabled bool)
}

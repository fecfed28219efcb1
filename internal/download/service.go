package download

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/android-template-generator/internal/logging"
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/platform"
)

// Messages attached to download failures
const (
	MsgNoData          = "No file data to download"
	MsgInvalidFilename = "Invalid filename provided"
	MsgUnsupported     = "Host does not support file downloads"
	MsgFailedFmt       = "Failed to download file: %s"
)

// stagingPattern names transient files; they are hidden on Unix
const stagingPattern = ".atg-*.part"

// Service handles download operations
type Service struct {
	mu          sync.RWMutex
	downloadDir string
	autoReveal  bool
	logger      logrus.FieldLogger

	rename func(oldPath, newPath string) error
	reveal func(path string) error
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the service logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRevealFunc replaces the file manager integration
func WithRevealFunc(fn func(path string) error) Option {
	return func(s *Service) {
		if fn != nil {
			s.reveal = fn
		}
	}
}

// NewService creates a new download service
func NewService(downloadDir string, opts ...Option) *Service {
	s := &Service{
		downloadDir: downloadDir,
		logger:      logging.StdLogger(),
		rename:      os.Rename,
		reveal:      platform.OpenFileInManager,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// DownloadDirectory returns the current download directory
func (s *Service) DownloadDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.downloadDir
}

// SetAutoReveal enables revealing saved files in the system file manager
func (s *Service) SetAutoReveal(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoReveal = enabled
}

// Download saves payload under filename and returns the final path
func (s *Service) Download(payload []byte, filename string) (string, error) {
	if payload == nil {
		return "", model.NewGenerationError(model.KindInvalidBlob, 0, MsgNoData)
	}

	name := platform.SanitizeFilename(filename)
	if name == "" {
		return "", model.NewGenerationError(model.KindInvalidFilename, 0, MsgInvalidFilename)
	}

	s.mu.RLock()
	dir, autoReveal := s.downloadDir, s.autoReveal
	s.mu.RUnlock()

	if dir == "" || platform.CreateDirectoryIfNotExists(dir) != nil || !platform.IsWritableDir(dir) {
		return "", model.NewGenerationError(model.KindBrowserUnsupported, 0, MsgUnsupported)
	}

	path, err := s.save(dir, name, payload)
	if err != nil {
		return "", model.WrapGenerationError(model.KindDownload, fmt.Sprintf(MsgFailedFmt, err.Error()), err)
	}

	s.logger.WithFields(logrus.Fields{
		"path": path,
		"size": len(payload),
	}).Info("Archive saved")

	if autoReveal {
		go func() {
			if err := s.reveal(path); err != nil {
				s.logger.WithError(err).WithField("path", path).Warn("Failed to reveal archive")
			}
		}()
	}

	return path, nil
}

// save stages payload in dir and moves it to a free name. The staging file
// is removed on every path.
func (s *Service) save(dir, name string, payload []byte) (path string, err error) {
	staging, err := os.CreateTemp(dir, stagingPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create staging file: %w", err)
	}
	stagingPath := staging.Name()
	defer func() {
		if removeErr := os.Remove(stagingPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			s.logger.WithError(removeErr).WithField("path", stagingPath).Warn("Failed to remove staging file")
		}
	}()

	if _, err := staging.Write(payload); err != nil {
		staging.Close()
		return "", fmt.Errorf("failed to write staging file: %w", err)
	}
	if err := staging.Close(); err != nil {
		return "", fmt.Errorf("failed to close staging file: %w", err)
	}
	if err := os.Chmod(stagingPath, platform.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to set file permissions: %w", err)
	}

	path, err = platform.UniqueFilePath(dir, name)
	if err != nil {
		return "", err
	}
	if err := s.rename(stagingPath, path); err != nil {
		return "", fmt.Errorf("failed to move archive into place: %w", err)
	}
	return path, nil
}

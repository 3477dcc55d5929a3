package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TempPath returns a unique download path under dir for one request. Paths
// are namespaced by a fresh uuid so concurrent jobs never collide.
func TempPath(dir, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", uuid.NewString(), ext)), nil
}

// Remove deletes a temporary artifact, logging rather than failing when the
// file is already gone or cannot be removed. Safe to call on every exit path.
func Remove(path string, logger *zap.SugaredLogger) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warnw("failed to remove temporary file", "path", path, "error", err)
	}
}

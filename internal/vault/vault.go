// Package vault owns the on-disk layout of ingested documents: one directory
// per category, files renamed to a unique timestamped form.
package vault

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joseph-ayodele/docuvault/constants"
)

var reWhitespace = regexp.MustCompile(`\s+`)

type Vault struct {
	root   string
	logger *slog.Logger
	now    func() time.Time
}

func New(root string, logger *slog.Logger) *Vault {
	if logger == nil {
		logger = slog.Default()
	}
	return &Vault{root: root, logger: logger, now: time.Now}
}

// Place moves the file at srcPath into the category directory under a unique
// name derived from the original filename. Falls back to copy+remove when the
// source sits on another filesystem.
func (v *Vault) Place(srcPath, originalFilename string, category constants.Category) (string, error) {
	dir := filepath.Join(v.root, string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create category dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", v.now().UnixMilli(), SanitizeFilename(originalFilename))
	dst := filepath.Join(dir, name)

	if err := os.Rename(srcPath, dst); err != nil {
		if copyErr := copyFile(srcPath, dst); copyErr != nil {
			return "", fmt.Errorf("place file: %w", copyErr)
		}
		if rmErr := os.Remove(srcPath); rmErr != nil {
			v.logger.Warn("failed to remove source after copy", "path", srcPath, "error", rmErr)
		}
	}

	v.logger.Info("document stored", "path", dst, "category", category)
	return dst, nil
}

// SanitizeFilename collapses whitespace runs to single dashes and strips path
// separators, keeping the stored name shell- and URL-friendly.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = reWhitespace.ReplaceAllString(name, "-")
	name = strings.ReplaceAll(name, string(os.PathSeparator), "-")
	if name == "" || name == "." {
		name = "document"
	}
	return name
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func(in *os.File) {
		_ = in.Close()
	}(in)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// =============================================================================
// konvertorMzdy - File Utilities
// =============================================================================
//
// Shared file handling helpers: output file naming and archival of processed
// inputs. Used by the converter after a successful run; nothing here is
// domain-specific.
//
// =============================================================================

package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OutputFileName expands an output name format. Supported placeholders:
//
//	{name}      base name of the input file without extension
//	{uuid}      a random UUID
//	{timestamp} current time as YYYYMMDD_HHMMSS
//
// The result always carries an .xml extension.
func OutputFileName(format, inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	name := format
	name = strings.ReplaceAll(name, "{name}", base)
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))

	if filepath.Ext(name) != ".xml" {
		name += ".xml"
	}
	return name
}

// ArchiveFile moves a processed input file into the archive directory. When a
// file of the same name already sits there, a timestamp suffix keeps the
// archive collision-free. Returns the archived path.
func ArchiveFile(path, archiveDir string) (string, error) {
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	target := filepath.Join(archiveDir, filepath.Base(path))
	if FileExists(target) {
		ext := filepath.Ext(target)
		target = strings.TrimSuffix(target, ext) + "_" + time.Now().Format("20060102_150405") + ext
	}

	if err := os.Rename(path, target); err == nil {
		return target, nil
	}

	// Rename fails across filesystems; fall back to copy and remove.
	if err := copyFile(path, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove archived original: %w", err)
	}
	return target, nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

package fileutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SanitizeNewlines escapes line breaks so a value fits on one log line.
func SanitizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// Truncate trims s and cuts it to at most max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// BackupFile copies path to path+".bak" if path exists. It reports whether a copy was made.
func BackupFile(path string) (bool, error) {
	return CopyFileIfExists(path, path+".bak", true)
}

func CopyFileIfExists(srcPath, dstPath string, overwrite bool) (bool, error) {
	if srcPath == "" || dstPath == "" {
		return false, errors.New("CopyFileIfExists: empty path")
	}

	if _, err := os.Stat(srcPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if !overwrite {
		if _, err := os.Stat(dstPath); err == nil {
			return false, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}

	b, err := os.ReadFile(srcPath)
	if err != nil {
		return false, err
	}
	if err := writeAtomic(dstPath, b, 0o644, false); err != nil {
		return false, err
	}
	return true, nil
}

func WriteJSONFileAtomic(path string, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := WriteFileAtomicSameDir(path, b, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteFileAtomicSameDir writes data plus a trailing newline (if missing) via a temp file
// in the destination directory followed by a rename.
func WriteFileAtomicSameDir(path string, data []byte, mode fs.FileMode) error {
	return writeAtomic(path, data, mode, true)
}

func writeAtomic(path string, data []byte, mode fs.FileMode, newline bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_write_*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if newline && (len(data) == 0 || data[len(data)-1] != '\n') {
		if _, err := tmp.Write([]byte("\n")); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

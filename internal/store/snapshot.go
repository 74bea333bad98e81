package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Snapshot copies the database file into dir before a write, named
// webui-<timestamp>.db. Returns the snapshot path.
func Snapshot(dbPath, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", storeErr("snapshot", err)
	}

	src, err := os.Open(dbPath)
	if err != nil {
		return "", storeErr("snapshot", err)
	}
	defer src.Close()

	name := fmt.Sprintf("webui-%s.db", time.Now().Format("20060102-150405"))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", storeErr("snapshot", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", storeErr("snapshot", err)
	}
	if err := dst.Sync(); err != nil {
		return "", storeErr("snapshot", err)
	}
	return dstPath, nil
}

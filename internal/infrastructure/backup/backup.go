// Package backup implements the peripheral data-safety collaborator: daily
// database snapshots with rotation, and whole-dataset zip bundles for moving
// the shop's data between machines.
package backup

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrSnapshotExists reports that today's snapshot was already taken.
var ErrSnapshotExists = errors.New("snapshot for today already exists")

// Manager owns the snapshot directory next to the database file.
type Manager struct {
	DBPath      string
	ConfigPath  string
	ReceiptsDir string
	Dir         string
	Max         int
}

func NewManager(dbPath, configPath, receiptsDir, dir string, max int) *Manager {
	return &Manager{DBPath: dbPath, ConfigPath: configPath, ReceiptsDir: receiptsDir, Dir: dir, Max: max}
}

func (m *Manager) snapshotPrefix() string {
	base := filepath.Base(m.DBPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_"
}

// Snapshot copies the database to <dir>/<db>_YYYY-MM-DD.db, at most once per
// day, then rotates old snapshots beyond Max. Returns the snapshot path.
func (m *Manager) Snapshot(now time.Time) (string, error) {
	if _, err := os.Stat(m.DBPath); err != nil {
		return "", fmt.Errorf("database not found: %w", err)
	}
	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return "", err
	}

	name := m.snapshotPrefix() + now.Format("2006-01-02") + ".db"
	dst := filepath.Join(m.Dir, name)
	if _, err := os.Stat(dst); err == nil {
		return dst, ErrSnapshotExists
	}

	if err := copyFile(m.DBPath, dst); err != nil {
		return "", err
	}
	log.WithField("snapshot", name).Info("backup created")

	if err := m.rotate(); err != nil {
		log.WithError(err).Warn("backup rotation failed")
	}
	return dst, nil
}

// rotate removes the oldest snapshots, keeping the Max most recent. Snapshot
// names embed the date, so lexicographic order is chronological.
func (m *Manager) rotate() error {
	if m.Max <= 0 {
		return nil
	}
	snapshots, err := filepath.Glob(filepath.Join(m.Dir, m.snapshotPrefix()+"*.db"))
	if err != nil {
		return err
	}
	sort.Strings(snapshots)

	for _, stale := range snapshots[:max(0, len(snapshots)-m.Max)] {
		if err := os.Remove(stale); err != nil {
			return err
		}
		log.WithField("snapshot", filepath.Base(stale)).Info("old backup removed")
	}
	return nil
}

// Export bundles the database, config file, receipts directory and existing
// snapshots into a single zip at dst.
func (m *Manager) Export(dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	if err := addFile(zw, m.DBPath, filepath.Base(m.DBPath)); err != nil {
		return err
	}
	if m.ConfigPath != "" {
		if err := addFileIfExists(zw, m.ConfigPath, filepath.Base(m.ConfigPath)); err != nil {
			return err
		}
	}
	for _, dir := range []string{m.ReceiptsDir, m.Dir} {
		if err := addDir(zw, dir); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Restore extracts a previously exported bundle over the current data,
// overwriting the database and config. Entries escaping the working
// directory are rejected.
func (m *Manager) Restore(src string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, entry := range zr.File {
		name := filepath.Clean(entry.Name)
		if name == ".." || strings.HasPrefix(name, ".."+string(os.PathSeparator)) || filepath.IsAbs(name) {
			return fmt.Errorf("unsafe entry in bundle: %q", entry.Name)
		}
		if entry.FileInfo().IsDir() {
			continue
		}
		if err := extractFile(entry, name); err != nil {
			return err
		}
	}
	log.WithField("bundle", filepath.Base(src)).Info("data restored")
	return nil
}

func extractFile(entry *zip.File, dst string) error {
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return err
	}
	return out.Close()
}

func addDir(zw *zip.Writer, dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := addFile(zw, path, filepath.ToSlash(filepath.Join(filepath.Base(dir), e.Name()))); err != nil {
			return err
		}
	}
	return nil
}

func addFileIfExists(zw *zip.Writer, path, name string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return addFile(zw, path, name)
}

func addFile(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
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
	return out.Close()
}

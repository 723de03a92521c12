package store

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files.
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep.
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the store document with the
// given rotation number. Backups are named store.json.bak.N where lower
// numbers are more recent (.bak.1 is the most recent backup).
func BackupPath(storePath string, n int) string {
	return fmt.Sprintf("%s%s.%d", storePath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, and deletes the oldest
// .bak.3 if it exists, so only MaxBackupCount backups are kept.
func rotateBackups(storePath string) error {
	oldest := BackupPath(storePath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(storePath, i)
		next := BackupPath(storePath, i+1)
		if err := os.Rename(current, next); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the current store document to .bak.1 before a
// destructive modification, rotating older backups first. If the store
// document doesn't exist yet, no backup is created and no error is returned.
func CreateBackup(storePath string) error {
	if _, err := os.Stat(storePath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(storePath); err != nil {
		return err
	}

	src, err := os.Open(storePath)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(BackupPath(storePath, 1), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// Backup describes one rotated backup of the store document.
type Backup struct {
	Number int
	Path   string
}

// ListBackups returns the existing backups for a store document, most
// recent first.
func ListBackups(storePath string) []Backup {
	var backups []Backup
	for n := 1; n <= MaxBackupCount; n++ {
		path := BackupPath(storePath, n)
		if _, err := os.Stat(path); err == nil {
			backups = append(backups, Backup{Number: n, Path: path})
		}
	}
	return backups
}

// RestoreBackup replaces the store document with backup n (1-based).
// The current document, if any, is backed up first so a restore is itself
// reversible.
func RestoreBackup(storePath string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("backup number %d out of range (1-%d)", n, MaxBackupCount)
	}

	backupPath := BackupPath(storePath, n)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("backup %d is not available: %w", n, err)
	}

	if err := CreateBackup(storePath); err != nil {
		return err
	}

	tmpFile := storePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, storePath)
}

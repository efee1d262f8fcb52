package diary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"diarykeeper/internal/domain/backup"
)

const tempFilePrefix = "diary-tmp-"

func (a *App) Export(w io.Writer) error {
	if err := a.unlocked(); err != nil {
		return err
	}
	return a.backup.Export(w)
}

// ExportFile атомарно записывает резервную копию. Пустой path берётся из конфигурации.
func (a *App) ExportFile(path string) (string, error) {
	if path == "" {
		path = a.config.BackupFile
	}

	var buf bytes.Buffer
	if err := a.Export(&buf); err != nil {
		return "", err
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o600); err != nil {
		return "", err
	}

	a.log.Info("резервная копия сохранена", "path", path)
	return path, nil
}

func (a *App) Import(ctx context.Context, r io.Reader) (backup.Result, error) {
	if err := a.unlocked(); err != nil {
		return backup.Result{}, err
	}
	return a.backup.Import(ctx, r)
}

func (a *App) ImportFile(ctx context.Context, path string) (backup.Result, error) {
	if err := a.unlocked(); err != nil {
		return backup.Result{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return backup.Result{}, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	return a.backup.Import(ctx, f)
}

// writeFileAtomic пишет во временный файл рядом с целевым и переименовывает его.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}

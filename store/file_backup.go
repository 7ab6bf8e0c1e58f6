package store

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Backup zips the company directory into <destDir>/<company>.zip. Entries are
// stored as <company>/<file> so the archive extracts into a companies dir.
func (s *FileStore) Backup(ctx context.Context, company, destDir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return "", err
	}
	if _, ok := index[company]; !ok {
		return "", fmt.Errorf("company %q: %w", company, ErrNotFound)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	srcDir := s.CompanyPath(company)
	base := filepath.Base(srcDir)
	dest := filepath.Join(destDir, base+".zip")

	tmp, err := os.CreateTemp(destDir, base+".*.zip.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeZip(tmp, srcDir, base); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	s.log.WithFields(logrus.Fields{"company": company, "dest": dest}).Info("Backup written")
	return dest, nil
}

func writeZip(w io.Writer, srcDir, prefix string) error {
	zw := zip.NewWriter(w)

	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(d.Name(), ".tmp") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		entry, err := zw.Create(path.Join(prefix, filepath.ToSlash(rel)))
		if err != nil {
			return err
		}
		_, err = io.Copy(entry, f)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Restore extracts a <company>.zip produced by Backup into the company
// directory and rebuilds the registry from the meta.json files on disk.
// Existing files with the same names are overwritten; other files are kept.
func (s *FileStore) Restore(ctx context.Context, archive string) error {
	company := strings.TrimSuffix(filepath.Base(archive), filepath.Ext(archive))
	if company == "" {
		return fmt.Errorf("cannot derive company name from %q", archive)
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer zr.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	destDir := s.CompanyPath(company)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create company directory: %w", err)
	}

	restored := 0
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rel, err := entryPath(f.Name, company)
		if err != nil {
			return err
		}
		if err := extractFile(f, filepath.Join(destDir, rel)); err != nil {
			return fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}
		restored++
	}

	if err := s.resyncLocked(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"company": company, "files": restored}).Info("Backup restored")
	return nil
}

// entryPath maps an archive entry to a path relative to the company directory.
// A leading <company>/ component is dropped; anything escaping the directory
// is rejected.
func entryPath(name, company string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	clean = strings.TrimPrefix(clean, company+"/")

	if clean == "." || clean == ".." || path.IsAbs(clean) || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("backup entry %q: %w", name, errUnsafeEntry)
	}
	return filepath.FromSlash(clean), nil
}

var errUnsafeEntry = errors.New("path escapes company directory")

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package source

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Format is an archive format recognised by its file extension
type Format string

const (
	FormatZip    Format = "zip"
	FormatTar    Format = "tar"
	FormatTarGz  Format = "tar.gz"
	FormatTarXz  Format = "tar.xz"
	FormatTarBz2 Format = "tar.bz2"
	FormatTarZst Format = "tar.zst"
)

var formatSuffixes = []struct {
	suffix string
	format Format
}{
	{".tar.gz", FormatTarGz},
	{".tgz", FormatTarGz},
	{".tar.xz", FormatTarXz},
	{".tar.bz2", FormatTarBz2},
	{".tar.zst", FormatTarZst},
	{".tar", FormatTar},
	{".zip", FormatZip},
}

// DetectFormat infers the archive format from the extension of a URL path.
// The content is never sniffed.
func DetectFormat(urlPath string) (Format, error) {
	lower := strings.ToLower(path.Base(urlPath))
	for _, fs := range formatSuffixes {
		if strings.HasSuffix(lower, fs.suffix) {
			return fs.format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, path.Ext(urlPath))
}

// Extract unpacks an in-memory archive into destPath
func Extract(format Format, data []byte, destPath string) error {
	if format == FormatZip {
		return extractZip(bytes.NewReader(data), int64(len(data)), destPath)
	}

	var r io.Reader = bytes.NewReader(data)
	switch format {
	case FormatTar:
	case FormatTarGz:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return err
		}
		defer gzr.Close()
		r = gzr
	case FormatTarXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return err
		}
		r = xzr
	case FormatTarBz2:
		r = bzip2.NewReader(r)
	case FormatTarZst:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return err
		}
		defer zr.Close()
		r = zr
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, format)
	}

	return extractTar(r, destPath)
}

// entryPath joins an archive member name onto destPath, refusing names that
// would land outside of it
func entryPath(destPath, name string) (string, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(name, "./"))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("archive entry %q escapes destination", name)
	}
	return filepath.Join(destPath, rel), nil
}

func fileMode(mode os.FileMode) os.FileMode {
	perm := mode.Perm()
	if perm == 0 {
		return 0644
	}
	// owner must be able to write so the temp tree can be cleaned up
	return perm | 0600
}

func extractTar(r io.Reader, destPath string) error {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if strings.Trim(header.Name, "./") == "" {
			continue
		}

		target, err := entryPath(destPath, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, fileMode(os.FileMode(header.Mode))); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return err
			}
		case tar.TypeLink:
			linked, err := entryPath(destPath, header.Linkname)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := os.Link(linked, target); err != nil {
				return err
			}
		}
		// pax global headers and device entries are ignored
	}

	return nil
}

func extractZip(ra io.ReaderAt, size int64, destPath string) error {
	r, err := zip.NewReader(ra, size)
	if err != nil {
		return err
	}

	for _, f := range r.File {
		if strings.Trim(f.Name, "./") == "" {
			continue
		}

		target, err := entryPath(destPath, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}

		if f.Mode()&os.ModeSymlink != 0 {
			err = writeSymlink(target, rc)
		} else {
			err = writeFile(target, rc, fileMode(f.Mode()))
		}
		rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSymlink(target string, r io.Reader) error {
	linkname, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.Symlink(string(linkname), target)
}

package profile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/eLbARROS13/OH-Toolkit/internal/document"
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// Load discovers profile files in dir and decodes them into a Set.
//
// A profile file is any regular file named *.json or *.json.gz; the subject
// ID is parsed from the filename. Files are visited in sorted filename order
// so the resulting Set iterates subjects deterministically. A file that
// fails to open or decode is logged and skipped; only an unreadable
// directory is an error. There is no default directory, callers always
// supply one.
func Load(dir string, logger *slog.Logger) (*Set, error) {
	return LoadContext(context.Background(), dir, logger)
}

// LoadContext is Load with cancellation between files. A large directory of
// gzipped profiles can take a while; ctx lets an interrupted CLI stop early.
func LoadContext(ctx context.Context, dir string, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "profile_loader", "dir", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, types.WrapError(types.PROFILE_DIR_UNREADABLE, "cannot read profile directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.gz") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	set := NewSet()
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping unreadable profile", "file", name, "error", err)
			continue
		}
		set.Add(SubjectID(name), doc)
	}

	logger.Info("profiles loaded", "subjects", set.Len(), "files", len(names))
	return set, nil
}

// SubjectID derives the subject identifier from a profile filename: the
// extension is stripped and everything up to the first underscore is the ID,
// so "P001_oh_profile.json" and "P001.json.gz" both map to "P001".
func SubjectID(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".json")
	if i := strings.Index(base, "_"); i >= 0 {
		return base[:i]
	}
	return base
}

func loadFile(path string) (*document.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, types.WrapError(types.PROFILE_DECODE_FAILED, "bad gzip stream", err)
		}
		defer gz.Close()
		r = gz
	}

	doc, err := document.Decode(r)
	if err != nil {
		return nil, types.WrapError(types.PROFILE_DECODE_FAILED, "bad JSON document", err)
	}
	return doc, nil
}

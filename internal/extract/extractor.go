// Package extract walks the dynamic key levels beneath a base path in every
// subject's profile and flattens what it finds into long-format records.
//
// The walk is deliberately forgiving: a subject missing the base path, a
// level that is not an object, or a value path that does not resolve all
// degrade to "contributes nothing" or a missing cell at the finest possible
// granularity. Extraction always completes; only malformed requests fail.
package extract

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/eLbARROS13/OH-Toolkit/internal/document"
	"github.com/eLbARROS13/OH-Toolkit/internal/filter"
	"github.com/eLbARROS13/OH-Toolkit/internal/pathspec"
	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// Level describes one layer of dynamically-named keys beneath the base path:
// its semantic name (becomes the record column holding the matched key) and
// optional include/exclude glob patterns over the keys found there.
type Level struct {
	Name    string
	Include []string
	Exclude []string
}

// Request describes one extraction. BasePath and ValuePaths use the
// serialized path syntax; ValuePaths may contain wildcards, Levels are
// implicit wildcards by construction.
type Request struct {
	BasePath   string
	Levels     []Level
	ValuePaths []string
	// Filter narrows the subject set and bounds date-shaped level keys.
	// Nil passes all profiles through.
	Filter *filter.Spec
	// Include and Exclude are fallback key patterns applied at any level
	// that does not carry its own.
	Include []string
	Exclude []string
}

// Extractor runs extraction requests against profile sets. Safe for
// concurrent use; it holds no per-run state.
type Extractor struct {
	logger  *slog.Logger
	workers int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWorkers sets the number of subjects processed concurrently. Output
// order is canonical subject order regardless of worker count.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an Extractor. A nil logger falls back to slog.Default().
func New(logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		logger:  logger.With("component", "extractor"),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract resolves req against every surviving subject in set and returns
// the concatenated records: subjects in set order, and within a subject the
// depth-first traversal order of level keys. An empty result is normal, not
// an error; errors are reserved for malformed requests.
func (e *Extractor) Extract(ctx context.Context, set *profile.Set, req Request) ([]*Record, error) {
	base, valuePaths, err := e.parseRequest(req)
	if err != nil {
		return nil, err
	}

	runID := types.NewRunID()
	logger := e.logger.With("run_id", runID.Short(), "base_path", req.BasePath)

	working := req.Filter.Apply(set)
	subjects := working.Subjects()
	logger.Debug("extraction started",
		"subjects", len(subjects),
		"levels", len(req.Levels),
		"value_paths", len(req.ValuePaths),
	)

	perSubject := make([][]*Record, len(subjects))
	if e.workers > 1 && len(subjects) > 1 {
		e.extractParallel(ctx, working, subjects, base, valuePaths, req, perSubject)
	} else {
		for i, id := range subjects {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			prof, _ := working.Get(id)
			perSubject[i] = e.extractSubject(id, prof, base, valuePaths, req)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []*Record
	for _, recs := range perSubject {
		records = append(records, recs...)
	}
	logger.Info("extraction finished", "records", len(records))
	return records, nil
}

type valuePath struct {
	raw  string
	path pathspec.Path
}

func (e *Extractor) parseRequest(req Request) (pathspec.Path, []valuePath, error) {
	base, err := pathspec.Parse(req.BasePath)
	if err != nil {
		return pathspec.Path{}, nil, types.WrapError(types.EXTRACT_BAD_REQUEST, "bad base path", err)
	}

	valuePaths := make([]valuePath, 0, len(req.ValuePaths))
	for _, raw := range req.ValuePaths {
		p, err := pathspec.Parse(raw)
		if err != nil {
			return pathspec.Path{}, nil, types.WrapError(types.EXTRACT_BAD_REQUEST, "bad value path", err)
		}
		valuePaths = append(valuePaths, valuePath{raw: raw, path: p})
	}

	for _, lvl := range req.Levels {
		if lvl.Name == "" {
			return pathspec.Path{}, nil, types.NewError(types.EXTRACT_BAD_REQUEST, "level with empty name")
		}
	}

	if err := req.Filter.Validate(); err != nil {
		return pathspec.Path{}, nil, types.WrapError(types.EXTRACT_BAD_REQUEST, "bad filter", err)
	}

	return base, valuePaths, nil
}

// extractParallel fans subjects out to a bounded worker pool. Each subject
// reads only its own profile and writes only its own slot, so the assembled
// output is identical to the sequential order.
func (e *Extractor) extractParallel(
	ctx context.Context,
	working *profile.Set,
	subjects []string,
	base pathspec.Path,
	valuePaths []valuePath,
	req Request,
	perSubject [][]*Record,
) {
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := e.workers
	if workers > len(subjects) {
		workers = len(subjects)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				prof, _ := working.Get(subjects[i])
				perSubject[i] = e.extractSubject(subjects[i], prof, base, valuePaths, req)
			}
		}()
	}

	for i := range subjects {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (e *Extractor) extractSubject(
	subjectID string,
	prof *document.Value,
	base pathspec.Path,
	valuePaths []valuePath,
	req Request,
) []*Record {
	root := pathspec.Resolve(prof, base)
	if pathspec.IsNotFound(root) {
		e.logger.Debug("base path absent, subject contributes no records",
			"subject", subjectID, "base_path", req.BasePath)
		return nil
	}

	var records []*Record
	e.walkLevels(subjectID, root, req, valuePaths, 0, nil, &records)
	return records
}

// walkLevels descends one dynamic key level per call. bindings holds the
// matched key for each level above the current depth.
func (e *Extractor) walkLevels(
	subjectID string,
	node *document.Value,
	req Request,
	valuePaths []valuePath,
	depth int,
	bindings []string,
	records *[]*Record,
) {
	if depth == len(req.Levels) {
		*records = append(*records, e.emit(subjectID, node, req, valuePaths, bindings))
		return
	}

	// A level that is not an object contributes nothing, silently.
	if node == nil || !node.IsObject() {
		return
	}

	lvl := req.Levels[depth]
	include := lvl.Include
	if include == nil {
		include = req.Include
	}
	exclude := lvl.Exclude
	if exclude == nil {
		exclude = req.Exclude
	}

	for _, key := range filterKeys(node.Keys(), include, exclude) {
		if !req.Filter.KeepKey(key) {
			continue
		}
		child, _ := node.Field(key)
		e.walkLevels(subjectID, child, req, valuePaths, depth+1, append(bindings, key), records)
	}
}

// emit builds the record for one fully-bound level combination.
func (e *Extractor) emit(
	subjectID string,
	node *document.Value,
	req Request,
	valuePaths []valuePath,
	bindings []string,
) *Record {
	rec := NewRecord()
	rec.Set(SubjectColumn, subjectID)
	for i, lvl := range req.Levels {
		rec.Set(lvl.Name, bindings[i])
	}

	for _, vp := range valuePaths {
		if !vp.path.HasWildcard() {
			rec.Set(vp.raw, cellValue(pathspec.Resolve(node, vp.path)))
			continue
		}
		for _, concrete := range pathspec.ExpandWildcards(node, vp.path) {
			rec.Set(columnName(vp.path, concrete), cellValue(pathspec.Resolve(node, concrete)))
		}
	}
	return rec
}

// columnName derives a wildcard-expanded column: the concrete path with the
// literal prefix ahead of the first wildcard dropped, so "acc.*.mean"
// matched at "walk" becomes column "walk.mean".
func columnName(pattern, concrete pathspec.Path) string {
	first := 0
	for i, seg := range pattern.Segments() {
		if seg == pathspec.Wildcard {
			first = i
			break
		}
	}
	return strings.Join(concrete.Segments()[first:], pathspec.Delimiter)
}

// cellValue converts a resolved leaf into a record cell. Absence is the nil
// cell. Objects and arrays that survive to a leaf are kept as unwrapped Go
// values; the sink decides how to render them.
func cellValue(v *document.Value) any {
	if pathspec.IsNotFound(v) {
		return nil
	}
	return v.Interface()
}

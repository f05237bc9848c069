package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/observability"
)

// traverser mirrors the source tree into the destination tree.
type traverser struct {
	layout    Layout
	documents *documentRenderer
	posts     *Collector
	report    *Report
	recorder  metrics.Recorder
	logger    observability.Logger
}

// run processes the work-list seeded with root until it is empty. The first
// error aborts the traversal; files already written stay in place.
func (t *traverser) run(ctx context.Context, root traversalTask) error {
	var work workList
	work.push(root)

	for {
		task, ok := work.pop()
		if !ok {
			return nil
		}
		if err := t.visit(ctx, task, &work); err != nil {
			return err
		}
	}
}

// visit handles the immediate entries of one directory, pushing subdirectories onto work.
func (t *traverser) visit(ctx context.Context, task traversalTask, work *workList) error {
	entries, err := os.ReadDir(task.src)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "list directory").
			WithContext("path", task.src).
			Build()
	}

	t.logger.Debug(ctx, "Visiting directory",
		logfields.Source(task.src),
		logfields.Dest(task.dst),
		logfields.Posts(task.inPosts),
		logfields.Count(len(entries)))

	for _, entry := range entries {
		name := entry.Name()
		src := filepath.Join(task.src, name)
		dst := filepath.Join(task.dst, name)

		if isDir(entry, src) {
			if err := ensureDir(dst); err != nil {
				return err
			}
			work.push(task.child(src, dst, t.layout.marksPosts(name)))
			t.count(kindDirectory)
			continue
		}

		kind := t.layout.classify(name)
		switch kind {
		case kindDocument:
			if err := t.document(ctx, task, src, filepath.Join(task.dst, t.layout.pageName(name))); err != nil {
				return err
			}
		case kindReserved:
			t.logger.Debug(ctx, "Skipping template file", logfields.Path(src), logfields.Kind(kind.String()))
		default:
			if err := copyFile(src, dst); err != nil {
				return err
			}
			t.logger.Debug(ctx, "Copied file", logfields.Path(src), logfields.Kind(kind.String()))
		}
		t.count(kind)
	}
	return nil
}

// document renders one Markdown file to dst and records it when it lies in the posts subtree.
func (t *traverser) document(ctx context.Context, task traversalTask, src, dst string) error {
	data, err := readFile(src)
	if err != nil {
		return err
	}
	doc, err := t.documents.render(src, data)
	if err != nil {
		return err
	}
	if err := writeFile(dst, doc.Page); err != nil {
		return err
	}
	t.logger.Debug(ctx, "Rendered document",
		logfields.Path(src),
		logfields.Dest(dst),
		logfields.Posts(task.inPosts))

	if task.inPosts {
		t.posts.Add(DocumentRecord{Path: dst, Body: doc.Body, Title: doc.Title})
		t.recorder.IncPost()
		t.report.Posts++
	}
	return nil
}

func (t *traverser) count(kind entryKind) {
	switch kind {
	case kindDirectory:
		t.report.Directories++
		t.recorder.IncEntry(metrics.EntryDirectory)
	case kindDocument:
		t.report.Documents++
		t.recorder.IncEntry(metrics.EntryDocument)
	case kindReserved:
		t.report.Skipped++
		t.recorder.IncEntry(metrics.EntryReserved)
	default:
		t.report.Copied++
		t.recorder.IncEntry(metrics.EntryCopied)
	}
}

// isDir reports whether entry is a directory, following symbolic links. A
// dangling link is treated as a file and fails when it is read.
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

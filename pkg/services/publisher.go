package services

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"iconpack/pkg/integrations"
)

const (
	// Fixed KV keys the editor fetches at startup.
	ManifestKey  = "icon-manifest"
	LibrariesKey = "icon-libraries"

	svgContentType = "image/svg+xml"

	DefaultConcurrency = 15
)

// UploadTally summarizes one SVG upload phase. Failures are reported for a
// manual re-run (usually filtered to one library); nothing is retried.
type UploadTally struct {
	Completed  uint64
	Failed     uint64
	FailedKeys []string
}

// Publisher pushes a finished build to the remote stores: the manifest
// documents into the KV namespace and the SVG tree into object storage.
type Publisher struct {
	uploader integrations.Uploader
	workers  int
}

func NewPublisher(uploader integrations.Uploader, workers int) *Publisher {
	if workers <= 0 {
		workers = DefaultConcurrency
	}
	return &Publisher{uploader: uploader, workers: workers}
}

// PublishManifest uploads manifest.json and libraries.json under their fixed
// KV keys. Unlike the SVG phase this is all-or-nothing: a failed put aborts.
func (p *Publisher) PublishManifest(dir string) error {
	if err := p.uploader.PutKV(ManifestKey, filepath.Join(dir, "manifest.json")); err != nil {
		return fmt.Errorf("failed to publish manifest: %w", err)
	}
	if err := p.uploader.PutKV(LibrariesKey, filepath.Join(dir, "libraries.json")); err != nil {
		return fmt.Errorf("failed to publish libraries: %w", err)
	}
	return nil
}

// PublishSVGs walks the generated SVG tree under root and uploads every file
// to object storage under its path relative to root. library, when set,
// restricts the walk to that library's subtree.
//
// Uploads run on a fixed pool of workers pulling from a shared queue; each
// item is independent and order-insensitive. A failed upload is counted and
// reported, never fatal, and never retried.
func (p *Publisher) PublishSVGs(root, library string) (*UploadTally, error) {
	keys, err := enumerateSVGs(root, library)
	if err != nil {
		return nil, err
	}

	queue := make(chan string)
	failedCh := make(chan string, len(keys))

	var completed, failed atomic.Uint64
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range queue {
				path := filepath.Join(root, filepath.FromSlash(key))
				if err := p.uploader.PutObject(key, path, svgContentType); err != nil {
					failed.Add(1)
					failedCh <- key
					log.Printf("⚠️  upload failed for %s: %v", key, err)
					continue
				}
				completed.Add(1)
			}
		}()
	}

	for _, key := range keys {
		queue <- key
	}
	close(queue)
	wg.Wait()
	close(failedCh)

	tally := &UploadTally{Completed: completed.Load(), Failed: failed.Load()}
	for key := range failedCh {
		tally.FailedKeys = append(tally.FailedKeys, key)
	}
	sort.Strings(tally.FailedKeys)
	return tally, nil
}

// enumerateSVGs collects the object keys (slash-separated paths relative to
// root) of every .svg in the output tree.
func enumerateSVGs(root, library string) ([]string, error) {
	walkRoot := root
	if library != "" {
		walkRoot = filepath.Join(root, library)
	}

	var keys []string
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".svg") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate svgs under %s: %w", walkRoot, err)
	}
	sort.Strings(keys)
	return keys, nil
}

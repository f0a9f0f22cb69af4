package services

import (
	"log"

	"iconpack/pkg/data"
	"iconpack/pkg/sources"
)

// Pipeline runs one full build: every adapter in sequence, then the manifest
// builder, then (optionally) the catalog index. Adapters and the builder run
// synchronously so identical inputs produce identical output.
type Pipeline struct {
	sources []sources.Source
	builder *Builder
	catalog *data.Catalog
	outDir  string
}

// NewPipeline wires the build. catalog may be nil to skip indexing.
func NewPipeline(srcs []sources.Source, outDir string, catalog *data.Catalog) *Pipeline {
	return &Pipeline{
		sources: srcs,
		builder: NewBuilder(outDir),
		catalog: catalog,
		outDir:  outDir,
	}
}

// Run executes the pipeline and returns the build report. One library
// failing to load never aborts the others; it is logged and skipped, same as
// a library that is not installed.
func (p *Pipeline) Run() (*data.Report, error) {
	var icons []data.IconRecord
	var libraries []data.LibraryMetadata

	for _, src := range p.sources {
		records, err := src.Load(p.outDir)
		if err != nil {
			log.Printf("⚠️  %s: failed to load: %v", src.Name(), err)
			continue
		}
		if len(records) == 0 {
			continue
		}

		meta := src.Metadata()
		meta.IconCount = 0 // derived by the builder
		libraries = append(libraries, meta)
		icons = append(icons, records...)
	}

	manifest, report, err := p.builder.Build(icons, libraries)
	if err != nil {
		return nil, err
	}
	if err := p.builder.Write(manifest, report); err != nil {
		return nil, err
	}

	if p.catalog != nil {
		if err := p.catalog.Reset(); err != nil {
			return nil, err
		}
		if err := p.catalog.SaveIcons(icons); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// Package pkg provides the core libraries for treeseed, a generator of random
// tree-shaped JSON seed data.
//
// # Overview
//
//  1. [tree] - Node model, random tree builder, traversal and validation
//  2. [io] - JSON export and import of generated documents
//  3. [render/nodelink] - Graphviz DOT and SVG diagrams of small trees
//  4. [pipeline] - Orchestration (build → validate → export)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Data Flow
//
//	requested count
//	      ↓
//	[pipeline] ParseCount (default 10, clamp to [10, 1000000])
//	      ↓
//	[tree] Generator.Build
//	      ↓
//	[io] ExportJSON → DBInitial.json
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Count: 500})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d nodes to %s\n", result.Count, result.Path)
//
// [tree]: github.com/matzehuels/treeseed/pkg/tree
// [io]: github.com/matzehuels/treeseed/pkg/io
// [render/nodelink]: github.com/matzehuels/treeseed/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/treeseed/pkg/pipeline
// [errors]: github.com/matzehuels/treeseed/pkg/errors
// [observability]: github.com/matzehuels/treeseed/pkg/observability
// [buildinfo]: github.com/matzehuels/treeseed/pkg/buildinfo
package pkg

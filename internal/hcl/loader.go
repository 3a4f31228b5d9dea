package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/nodecalc/internal/config"
	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/fsutil"
	"github.com/specialistvlad/nodecalc/internal/graph"
)

// FileExtension is the extension of seed files.
const FileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL seed loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths, in order, and merges all graph
// blocks into one seed. The graph takes the name of the first block.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Seed, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, p := range paths {
		found, err := fsutil.ResolvePath(ctx, p, FileExtension)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	seed := &config.Seed{Files: files}
	parser := hclparse.NewParser()
	named := false

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, gb := range root.Graphs {
			if !named {
				seed.Graph.ID = gb.Name
				named = true
			}
			if err := l.mergeGraph(ctx, seed, gb); err != nil {
				return nil, fmt.Errorf("in %s, graph %q: %w", file, gb.Name, err)
			}
		}
	}

	if err := graph.Validate(seed.Graph); err != nil {
		return nil, fmt.Errorf("invalid seed graph: %w", err)
	}

	logger.Debug("HCL loading complete.", "graph", seed.Graph.ID, "nodes", len(seed.Graph.Nodes), "edges", len(seed.Graph.Edges), "output", seed.Output)
	return seed, nil
}

// mergeGraph appends the nodes and edges of one graph block to the seed.
func (l *Loader) mergeGraph(ctx context.Context, seed *config.Seed, gb *graphBlock) error {
	logger := ctxlog.FromContext(ctx)

	if gb.Output != "" {
		if seed.Output != "" && seed.Output != gb.Output {
			return fmt.Errorf("output %q conflicts with previously declared output %q", gb.Output, seed.Output)
		}
		seed.Output = gb.Output
	}

	for _, nb := range gb.Nodes {
		n, err := translateNode(nb)
		if err != nil {
			return err
		}
		g, err := graph.AddNode(seed.Graph, n)
		if err != nil {
			return err
		}
		seed.Graph = g
		logger.Debug("Seed node declared.", "node", n.ID, "type", n.Type)
	}

	// Edges are collected without endpoint checks so that a later file may
	// declare the nodes they reference. Validate runs once everything is read.
	for _, eb := range gb.Edges {
		e, err := translateEdge(eb)
		if err != nil {
			return err
		}
		for _, existing := range seed.Graph.Edges {
			if existing.ID == e.ID {
				return fmt.Errorf("edge %q: %w", e.ID, graph.ErrDuplicateEdge)
			}
		}
		seed.Graph.Edges = append(seed.Graph.Edges, e)
	}

	return nil
}

package hclconf

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/faultmap/plotgridgo/config"
	"github.com/faultmap/plotgridgo/ctxlog"
	"github.com/faultmap/plotgridgo/expand"
	"github.com/faultmap/plotgridgo/fsutil"
	"github.com/faultmap/plotgridgo/schema"
)

// Loader parses configuration files into the agnostic model. The expansion
// registry it is constructed with defines the set of recognized plot types;
// a figure whose plot type label has no registered rule is rejected at load
// time.
type Loader struct {
	parser   *hclparse.Parser
	registry *expand.Registry
}

// NewLoader creates a Loader. A nil registry selects the built-in plot types.
func NewLoader(registry *expand.Registry) *Loader {
	if registry == nil {
		registry = expand.Default()
	}
	return &Loader{
		parser:   hclparse.NewParser(),
		registry: registry,
	}
}

// Load reads all configuration files reachable from the given paths, in
// deterministic order, and returns the consolidated model. Each path may be
// a single file or a directory searched recursively for .hcl and .json
// files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl", ".json")
		if err != nil {
			return nil, &SchemaError{Detail: "failed to find configuration files", Err: err}
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		logger.Warn("No configuration files found in paths, returning empty model", "paths", paths)
		return &config.Model{}, nil
	}
	logger.Debug("Found configuration files to load", "files", files)

	var docs []*schema.Document
	for _, file := range files {
		doc, err := l.parseFile(file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	model, err := l.translate(docs)
	if err != nil {
		return nil, err
	}
	logger.Info("Configuration loaded successfully.", "figures_found", len(model.Figures))
	return model, nil
}

// LoadBody translates an already-parsed HCL body. It exists so that embedding
// callers (and tests) can feed configuration without touching the
// filesystem.
func (l *Loader) LoadBody(body hcl.Body) (*config.Model, error) {
	doc, err := l.decodeBody(body, "<body>")
	if err != nil {
		return nil, err
	}
	return l.translate([]*schema.Document{doc})
}

func (l *Loader) parseFile(path string) (*schema.Document, error) {
	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(path, ".json") {
		file, diags = l.parser.ParseJSONFile(path)
	} else {
		file, diags = l.parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, &SchemaError{Detail: "failed to parse " + path, Err: diags}
	}
	return l.decodeBody(file.Body, path)
}

func (l *Loader) decodeBody(body hcl.Body, name string) (*schema.Document, error) {
	var doc schema.Document
	if diags := gohcl.DecodeBody(body, nil, &doc); diags.HasErrors() {
		return nil, &SchemaError{Detail: "failed to decode " + name, Err: diags}
	}
	return &doc, nil
}

package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/ctxlog"
	"github.com/qgridlab/qcostgo/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL job loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from the given paths, merges their
// blocks, and translates the result into a SearchJob. The singleton blocks
// (profile, budget, context, code) may each appear exactly once across all
// files; factory blocks accumulate.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.SearchJob, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl job files found under %v", paths)
	}
	logger.Debug("Discovered job files.", "count", len(files))

	parser := hclparse.NewParser()
	job := &config.SearchJob{}
	var haveProfile, haveBudget, haveContext bool

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse job file %s: %w", file, diags)
		}

		var root schema.Root
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode job file %s: %w", file, diags)
		}

		if root.Profile != nil {
			if haveProfile {
				return nil, fmt.Errorf("%s: duplicate profile block", file)
			}
			haveProfile = true
			job.Profile = translateProfile(root.Profile)
		}
		if root.Budget != nil {
			if haveBudget {
				return nil, fmt.Errorf("%s: duplicate budget block", file)
			}
			haveBudget = true
			job.Budget = translateBudget(root.Budget)
		}
		if root.Context != nil {
			if haveContext {
				return nil, fmt.Errorf("%s: duplicate context block", file)
			}
			haveContext = true
			cc, err := translateContext(root.Context)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			job.Context = cc
		}
		for _, code := range root.Codes {
			if job.Code != nil {
				return nil, fmt.Errorf("%s: duplicate code block %q, a job searches exactly one code", file, code.Type+"."+code.Name)
			}
			block, err := translateModelBlock(code)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			job.Code = block
		}
		for _, factory := range root.Factories {
			block, err := translateModelBlock(factory)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			job.Factories = append(job.Factories, block)
		}
	}

	if !haveProfile {
		return nil, fmt.Errorf("job declares no profile block")
	}
	if !haveBudget {
		return nil, fmt.Errorf("job declares no budget block")
	}
	if !haveContext {
		return nil, fmt.Errorf("job declares no context block")
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Job loading complete.", "factories", len(job.Factories))
	return job, nil
}

// findHCLFiles walks every path and returns all .hcl files, deduplicated, in
// a deterministic order.
func findHCLFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if _, dup := seen[path]; !dup {
				all = append(all, path)
				seen[path] = struct{}{}
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(p) != ".hcl" {
				return nil
			}
			if _, dup := seen[p]; !dup {
				all = append(all, p)
				seen[p] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return all, nil
}

package buildfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/bakego/internal/ctxlog"
	"github.com/specialistvlad/bakego/internal/fsutil"
	"github.com/specialistvlad/bakego/internal/registry"
	"github.com/specialistvlad/bakego/internal/task"
)

// Loader parses buildfiles and populates a registry with their declarations.
type Loader struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLoader creates a Loader. Command output from declared actions goes to
// the given writers; nil writers default to the process streams.
func NewLoader(stdout, stderr io.Writer) *Loader {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Loader{stdout: stdout, stderr: stderr}
}

// Load reads the buildfile at path (a single .hcl file, or every .hcl file
// under a directory) and applies every declaration to reg. Declarations of
// one name across several files merge the same way repeated declarations in
// one file do.
func (l *Loader) Load(ctx context.Context, reg *registry.Registry, path string) error {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("buildfile path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return fmt.Errorf("failed to find buildfiles in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No .hcl buildfiles found in path.", "path", path)
			return nil
		}
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse buildfile %s: %w", file, diags)
		}
		if err := l.applyFile(ctx, reg, hclFile.Body, filepath.Dir(file)); err != nil {
			return fmt.Errorf("buildfile %s: %w", file, err)
		}
		logger.Debug("Loaded declarations from buildfile.", "file", file)
	}

	logger.Debug("Buildfile loading complete.", "tasks", len(reg.Names()), "rules", len(reg.Rules()))
	return nil
}

// applyFile walks the decoded blocks of one file and applies each declaration
// to the registry. dir becomes the working directory of every command the
// file declares.
func (l *Loader) applyFile(ctx context.Context, reg *registry.Registry, body hcl.Body, dir string) error {
	parsed, err := parseFile(body)
	if err != nil {
		return err
	}

	for _, block := range parsed.Tasks {
		decl, err := decodeTask(block)
		if err != nil {
			return err
		}
		if _, err := reg.DefineTask(descriptorFor(decl), l.actionsFor(decl.Commands, dir)...); err != nil {
			return err
		}
	}

	for _, block := range parsed.Files {
		decl, err := decodeTask(block)
		if err != nil {
			return err
		}
		if _, err := reg.DefineFileTask(descriptorFor(decl), l.actionsFor(decl.Commands, dir)...); err != nil {
			return err
		}
	}

	for _, block := range parsed.Rules {
		decl, err := decodeRule(block)
		if err != nil {
			return err
		}
		spec := registry.RuleSpec{
			Pattern: decl.Pattern,
			Sources: []any{decl.Source},
			Actions: l.actionsFor(decl.Commands, dir),
		}
		if _, err := reg.CreateRule(spec); err != nil {
			return err
		}
	}

	return nil
}

func descriptorFor(decl *taskDecl) registry.Descriptor {
	return registry.Descriptor{Targets: []string{decl.Name}, Deps: decl.Deps}
}

func (l *Loader) actionsFor(expr hcl.Expression, dir string) []task.Action {
	if expr == nil {
		return nil
	}
	return []task.Action{&commandAction{expr: expr, dir: dir, stdout: l.stdout, stderr: l.stderr}}
}

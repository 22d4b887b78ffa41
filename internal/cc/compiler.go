// internal/cc/compiler.go
// Package cc turns C kernel sources into loadable shared objects using the
// system toolchain.
package cc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/stadion/internal/logging"
	"github.com/mwiater/stadion/internal/util"
)

// Artifact is a compiled shared object bound to one exported symbol. It is
// owned by the run that created it; RemoveAll on the work directory (or the
// artifact's Remove) releases it.
type Artifact struct {
	Path   string
	Symbol string
	Flags  []string
}

// Remove deletes the artifact file from disk.
func (a *Artifact) Remove() error {
	return os.Remove(a.Path)
}

// Compiler invokes the system C toolchain to build shared objects. Each
// distinct optimization flag set produces its own artifact; artifacts are
// never merged or cached across flag sets.
type Compiler struct {
	Path    string
	WorkDir string
	Timeout time.Duration
}

// New returns a Compiler that writes artifacts under workDir.
func New(path, workDir string, timeout time.Duration) *Compiler {
	if path == "" {
		path = "cc"
	}
	return &Compiler{Path: path, WorkDir: workDir, Timeout: timeout}
}

// Available reports whether the configured toolchain binary can be found.
func (c *Compiler) Available() bool {
	_, err := exec.LookPath(c.Path)
	return err == nil
}

// Compile builds source into a uniquely named shared object exporting symbol,
// with the given optimization flags appended to the invocation. The toolchain
// reads the source on stdin and runs synchronously; a nonzero exit or a
// missing output file is a build error carrying the compiler diagnostics.
func (c *Compiler) Compile(ctx context.Context, source, symbol string, optFlags ...string) (*Artifact, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("compile %s: empty source", symbol)
	}
	if err := os.MkdirAll(c.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("create work directory: %w", err)
	}

	pattern := fmt.Sprintf("%s-%s-*.so", symbol, flagSlug(optFlags))
	out, err := os.CreateTemp(c.WorkDir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create artifact file: %w", err)
	}
	outPath := out.Name()
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close artifact file: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := append([]string{}, optFlags...)
	args = append(args, "-shared", "-fPIC", "-xc", "-", "-o", outPath)
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stdin = strings.NewReader(source)

	output, err := cmd.CombinedOutput()
	logging.LogCompile(c.Path, optFlags, outPath, err)
	if err != nil {
		_ = os.Remove(outPath)
		diagnostics := strings.TrimSpace(string(output))
		if diagnostics != "" {
			return nil, fmt.Errorf("compile %s with %v: %w: %s", symbol, optFlags, err, diagnostics)
		}
		return nil, fmt.Errorf("compile %s with %v: %w", symbol, optFlags, err)
	}

	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		_ = os.Remove(outPath)
		return nil, fmt.Errorf("compile %s with %v: toolchain exited cleanly but produced no artifact", symbol, optFlags)
	}

	return &Artifact{Path: outPath, Symbol: symbol, Flags: optFlags}, nil
}

// flagSlug derives a filesystem-safe tag from a flag set so artifact names
// stay readable.
func flagSlug(flags []string) string {
	if len(flags) == 0 {
		return "noopt"
	}
	slug := util.Slugify(strings.Join(flags, "-"))
	if slug == "" {
		return "noopt"
	}
	return slug
}

// TempWorkDir creates a per-run artifact directory under the system temp
// root, falling back to base when provided.
func TempWorkDir(base string) (string, error) {
	if base != "" {
		if err := os.MkdirAll(base, 0o755); err != nil {
			return "", fmt.Errorf("create work directory: %w", err)
		}
		return os.MkdirTemp(base, "stadion-*")
	}
	return os.MkdirTemp("", "stadion-*")
}

// CleanWorkDir removes a per-run artifact directory and everything in it.
func CleanWorkDir(dir string) error {
	if dir == "" {
		return nil
	}
	if filepath.Clean(dir) == string(filepath.Separator) {
		return fmt.Errorf("refusing to remove %q", dir)
	}
	return os.RemoveAll(dir)
}

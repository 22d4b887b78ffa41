// internal/cc/compiler_test.go
package cc

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestCompiler(t *testing.T) *Compiler {
	t.Helper()
	c := New("cc", t.TempDir(), 30*time.Second)
	if !c.Available() {
		t.Skip("cc not found in PATH")
	}
	return c
}

func TestRenderKernel(t *testing.T) {
	t.Parallel()

	src, err := RenderKernel("sum.c.tmpl", map[string]any{"Symbol": "sum_kernel"})
	if err != nil {
		t.Fatalf("RenderKernel: %v", err)
	}
	if !strings.Contains(src, "double sum_kernel(size_t n, const double *data)") {
		t.Fatalf("unexpected kernel source:\n%s", src)
	}

	src, err = RenderKernel("branch.c.tmpl", map[string]any{
		"Symbol":     "branch_kernel",
		"Threshold":  "0.5",
		"Branchless": true,
	})
	if err != nil {
		t.Fatalf("RenderKernel branch: %v", err)
	}
	if !strings.Contains(src, "count += (data[i] > 0.5);") {
		t.Fatalf("expected branchless body:\n%s", src)
	}

	if _, err := RenderKernel("nope.c.tmpl", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestKernelNames(t *testing.T) {
	t.Parallel()

	names := KernelNames()
	want := map[string]bool{
		"sum.c.tmpl":       false,
		"branch.c.tmpl":    false,
		"loopbound.c.tmpl": false,
		"matrix.c.tmpl":    false,
	}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("kernel template %q missing from %v", name, names)
		}
	}
}

func TestCompileProducesArtifact(t *testing.T) {
	c := newTestCompiler(t)

	src, err := RenderKernel("sum.c.tmpl", map[string]any{"Symbol": "sum_kernel"})
	if err != nil {
		t.Fatalf("RenderKernel: %v", err)
	}

	artifact, err := c.Compile(context.Background(), src, "sum_kernel", "-O2")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	info, err := os.Stat(artifact.Path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("artifact is empty")
	}
	if artifact.Symbol != "sum_kernel" {
		t.Fatalf("unexpected symbol: %q", artifact.Symbol)
	}

	if err := artifact.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(artifact.Path); !os.IsNotExist(err) {
		t.Fatalf("artifact still present after Remove: %v", err)
	}
}

func TestCompileSameFlagsTwice(t *testing.T) {
	c := newTestCompiler(t)

	src, err := RenderKernel("sum.c.tmpl", map[string]any{"Symbol": "sum_kernel"})
	if err != nil {
		t.Fatalf("RenderKernel: %v", err)
	}

	first, err := c.Compile(context.Background(), src, "sum_kernel", "-O3")
	if err != nil {
		t.Fatalf("first Compile: %v", err)
	}
	second, err := c.Compile(context.Background(), src, "sum_kernel", "-O3")
	if err != nil {
		t.Fatalf("second Compile: %v", err)
	}
	if first.Path == second.Path {
		t.Fatalf("expected distinct artifacts, both at %s", first.Path)
	}
}

func TestCompileInvalidSource(t *testing.T) {
	c := newTestCompiler(t)

	_, err := c.Compile(context.Background(), "double broken(size_t n { return 0 }", "broken", "-O0")
	if err == nil {
		t.Fatal("expected a build error for an invalid snippet")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("error should name the symbol: %v", err)
	}
}

func TestCompileEmptySource(t *testing.T) {
	c := New("cc", t.TempDir(), time.Second)
	if _, err := c.Compile(context.Background(), "   ", "empty"); err == nil {
		t.Fatal("expected an error for empty source")
	}
}

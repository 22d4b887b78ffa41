// internal/cc/templates.go
package cc

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.c.tmpl
var templateFS embed.FS

var kernelTemplates = template.Must(template.ParseFS(templateFS, "templates/*.c.tmpl"))

// RenderKernel renders the named kernel template (e.g. "sum.c.tmpl") with the
// given data. Kernel sources are versioned resources shipped with the binary,
// never inline literals.
func RenderKernel(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := kernelTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render kernel template %q: %w", name, err)
	}
	return buf.String(), nil
}

// KernelNames lists the available kernel templates.
func KernelNames() []string {
	templates := kernelTemplates.Templates()
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name())
	}
	return names
}

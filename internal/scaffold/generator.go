package scaffold

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/example/django2gorm/internal/models"
	scaffoldtmpl "github.com/example/django2gorm/internal/templates/scaffold"
)

// Generator assembles generated files from templates.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator creates a new Generator.
func NewGenerator() (*Generator, error) {
	tmpl, err := scaffoldtmpl.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse scaffold templates: %w", err)
	}
	return &Generator{tmpl: tmpl}, nil
}

// Assemble composes the output file for a conversion result. Blocks appear
// in a fixed order: imports, Tabler interface, default User, default Group,
// the declarations, then the usage example.
func (g *Generator) Assemble(res *models.ConversionResult, opts Options) (*Output, error) {
	opts = withDefaults(opts)

	var parts []string
	appendBlock := func(block string, data any) error {
		content, err := g.render(block, data)
		if err != nil {
			return err
		}
		parts = append(parts, content)
		return nil
	}

	if opts.IncludeScaffolding {
		if err := appendBlock(scaffoldtmpl.BlockImports, newImportsData(opts)); err != nil {
			return nil, err
		}
	}
	if res.ExplicitTables {
		if err := appendBlock(scaffoldtmpl.BlockTabler, nil); err != nil {
			return nil, err
		}
	}
	if !res.FoundUser && opts.AutoAddUser {
		if err := appendBlock(scaffoldtmpl.BlockUser, nil); err != nil {
			return nil, err
		}
	}
	if !res.FoundGroup && opts.AutoAddGroup {
		if err := appendBlock(scaffoldtmpl.BlockGroup, nil); err != nil {
			return nil, err
		}
	}
	for _, d := range res.Declarations {
		parts = append(parts, d.Rendered...)
	}

	text := strings.Join(parts, "\n")
	if opts.IncludeScaffolding {
		usage, err := g.render(scaffoldtmpl.BlockUsage, usageData{
			Driver: opts.Driver,
			DSN:    exampleDSNs[opts.Driver],
		})
		if err != nil {
			return nil, err
		}
		text += usage
	}

	out := &Output{
		Text:        text,
		Diagnostics: append([]models.Diagnostic(nil), res.Diagnostics...),
	}

	if opts.Gofmt {
		formatted, err := format.Source([]byte(text))
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, models.Diagnostic{
				Severity: models.SeverityWarning,
				Code:     models.CodeFormatFailed,
				Message:  fmt.Sprintf("gofmt failed, output left unformatted: %v", err),
			})
		} else {
			out.Text = string(formatted)
		}
	}

	return out, nil
}

// render renders one scaffolding block.
func (g *Generator) render(block string, data any) (string, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		return "", fmt.Errorf("failed to render %s block: %w", block, err)
	}
	return buf.String(), nil
}

func withDefaults(opts Options) Options {
	if opts.PackageName == "" {
		opts.PackageName = "main"
	}
	if !IsDriver(opts.Driver) {
		opts.Driver = DriverPostgres
	}
	return opts
}

func newImportsData(opts Options) importsData {
	data := importsData{Package: opts.PackageName, Driver: opts.Driver}
	for _, name := range Drivers {
		data.Drivers = append(data.Drivers, driverImport{Name: name, Enabled: name == opts.Driver})
	}
	return data
}

// Package scaffold provides the templates wrapped around generated GORM
// models and the built-in demo schema.
package scaffold

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed gorm/*.tmpl demo/models.py
var scaffoldTemplates embed.FS

// Block names, in the order they appear in a generated file.
const (
	BlockImports = "imports"
	BlockTabler  = "tabler"
	BlockUser    = "user"
	BlockGroup   = "group"
	BlockUsage   = "usage"
)

// GetTemplate returns the content of a scaffolding block template.
func GetTemplate(block string) (string, error) {
	content, err := scaffoldTemplates.ReadFile("gorm/" + block + ".go.tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Parse parses every scaffolding block into one template set. Each block is
// addressable by its name.
func Parse() (*template.Template, error) {
	root := template.New("gorm")
	for _, block := range []string{BlockImports, BlockTabler, BlockUser, BlockGroup, BlockUsage} {
		content, err := GetTemplate(block)
		if err != nil {
			return nil, err
		}
		if _, err := root.New(block).Parse(content); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// DemoSchema returns the built-in example models.py, one entry per line.
func DemoSchema() []string {
	content, err := scaffoldTemplates.ReadFile("demo/models.py")
	if err != nil {
		// The file is embedded at build time.
		panic(err)
	}
	return strings.Split(string(content), "\n")
}

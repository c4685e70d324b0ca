package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"ghost_tester/domain/entities"
	"ghost_tester/domain/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

const (
	pagesFileName = "page_objects.go"
	setupFileName = "setup_test.go"
	specFileName  = "generated_test.go"
)

// Project writes recorded steps into a Go module. Generated files live under
// <Root>/<Folder>/pages and <Root>/<Folder>/e2e.
type Project struct {
	Root        string
	Folder      string
	ModulePath  string
	PagesImport string
	logger      *logrus.Logger
}

// NewProject - opens the Go module rooted at root
func NewProject(root, folder string, logger *logrus.Logger) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}

	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return nil, fmt.Errorf("no module path in %s", filepath.Join(root, "go.mod"))
	}

	pagesImport := path.Join(modPath, filepath.ToSlash(folder), "pages")
	if err := module.CheckImportPath(pagesImport); err != nil {
		return nil, fmt.Errorf("folder %q does not form a valid import path: %w", folder, err)
	}

	return &Project{
		Root:        root,
		Folder:      folder,
		ModulePath:  modPath,
		PagesImport: pagesImport,
		logger:      logger,
	}, nil
}

// PagesFile - returns the path of the page objects file
func (p *Project) PagesFile() string {
	return filepath.Join(p.Root, p.Folder, "pages", pagesFileName)
}

// SetupFile - returns the path of the shared browser setup file
func (p *Project) SetupFile() string {
	return filepath.Join(p.Root, p.Folder, "e2e", setupFileName)
}

// SpecFile - returns the path of the generated test file
func (p *Project) SpecFile() string {
	return filepath.Join(p.Root, p.Folder, "e2e", specFileName)
}

// AddStep appends the accessor for step to the page objects and the step
// itself to the end of the generated test. targetURL is only used when the
// test file is created. Nothing is written unless every file formats cleanly.
func (p *Project) AddStep(step entities.Step, targetURL string) (entities.GeneratedCode, error) {
	stepCode, err := RenderStep(step)
	if err != nil {
		return entities.GeneratedCode{}, err
	}
	accessor := RenderAccessor(step.Accessor, step.Locator)

	pagesSrc, err := p.nextPages(step.Accessor, accessor)
	if err != nil {
		return entities.GeneratedCode{}, err
	}

	specSrc, err := p.nextSpec(stepCode, targetURL)
	if err != nil {
		return entities.GeneratedCode{}, err
	}

	var setupSrc []byte
	if _, err := os.Stat(p.SetupFile()); errors.Is(err, os.ErrNotExist) {
		if setupSrc, err = execute(setupTemplate, nil); err != nil {
			return entities.GeneratedCode{}, fmt.Errorf("failed to render setup: %w", err)
		}
	}

	if err := writeFile(p.PagesFile(), pagesSrc); err != nil {
		return entities.GeneratedCode{}, err
	}
	if setupSrc != nil {
		if err := writeFile(p.SetupFile(), setupSrc); err != nil {
			return entities.GeneratedCode{}, err
		}
	}
	if err := writeFile(p.SpecFile(), specSrc); err != nil {
		return entities.GeneratedCode{}, err
	}

	if p.logger != nil {
		p.logger.WithFields(logrus.Fields{
			"accessor": step.Accessor,
			"action":   step.Action,
			"folder":   p.Folder,
		}).Info("Step written")
	}

	return entities.GeneratedCode{PageObject: accessor, Step: stepCode}, nil
}

// Accessors returns the names of the accessors already defined in the page
// objects file. A missing file defines none.
func (p *Project) Accessors() (map[string]bool, error) {
	current, err := os.ReadFile(p.PagesFile())
	switch {
	case errors.Is(err, os.ErrNotExist):
		return map[string]bool{}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read page objects: %w", err)
	}

	defined, err := definedAccessors(current)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.PagesFile(), err)
	}
	return defined, nil
}

func (p *Project) nextPages(name, accessor string) ([]byte, error) {
	current, err := os.ReadFile(p.PagesFile())
	switch {
	case errors.Is(err, os.ErrNotExist):
		if current, err = execute(pagesTemplate, nil); err != nil {
			return nil, fmt.Errorf("failed to render page objects: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read page objects: %w", err)
	}

	defined, err := definedAccessors(current)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.PagesFile(), err)
	}
	if defined[name] {
		return nil, fmt.Errorf("accessor %s is already defined in %s", name, p.PagesFile())
	}

	src := strings.TrimRight(string(current), "\n") + "\n\n" + accessor
	return formatSource(p.PagesFile(), src)
}

func (p *Project) nextSpec(stepCode, targetURL string) ([]byte, error) {
	current, err := os.ReadFile(p.SpecFile())
	switch {
	case errors.Is(err, os.ErrNotExist):
		current, err = execute(specTemplate, specData{
			PagesImport: p.PagesImport,
			URL:         strconv.Quote(targetURL),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render test: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read test: %w", err)
	}

	src, err := insertStep(string(current), stepCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.SpecFile(), err)
	}
	return formatSource(p.SpecFile(), src)
}

// insertStep places stepCode before the closing brace of the last top-level
// declaration, which is the generated test function.
func insertStep(src, stepCode string) (string, error) {
	body := strings.TrimRight(src, "\n")
	idx := strings.LastIndex(body, "\n}")
	if idx < 0 {
		return "", fmt.Errorf("no closing brace to insert before")
	}

	var b strings.Builder
	b.WriteString(body[:idx])
	for _, line := range strings.Split(stepCode, "\n") {
		b.WriteString("\n\t")
		b.WriteString(line)
	}
	b.WriteString(body[idx:])
	b.WriteString("\n")
	return b.String(), nil
}

func definedAccessors(src []byte) (map[string]bool, error) {
	file, err := parser.ParseFile(token.NewFileSet(), pagesFileName, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	names := make(map[string]bool)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		names[fn.Name.Name] = true
	}
	return names, nil
}

func formatSource(name, src string) ([]byte, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("generated source for %s does not format: %w", name, err)
	}
	return out, nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

var _ interfaces.ProjectWriter = (*Project)(nil)

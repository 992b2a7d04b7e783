// Package cssmodule scopes the class names of stylesheets so each
// component's classes can't collide with another's.
//
// A module is a stylesheet named <name>.module.css. Every class selector in
// it is renamed to <class>_<hash>, where the hash depends on the module name
// and the class, and templates look the scoped name up by module and local
// class name.
package cssmodule

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const fileSuffix = ".module.css"

var (
	// ErrUnknownModule is returned when looking up a module that wasn't
	// loaded.
	ErrUnknownModule = errors.New("unknown CSS module")

	// ErrUnknownClass is returned when looking up a class that the
	// module's stylesheet never declares.
	ErrUnknownClass = errors.New("unknown CSS module class")

	// ErrNoModules is returned when Load finds no module stylesheets.
	ErrNoModules = errors.New("no CSS modules found")
)

// Module is a compiled CSS module.
type Module struct {
	name     string
	css      string
	classes  map[string]string
	fileName string
}

// Compile scopes every class selector in src to the module called name.
func Compile(name, src string) *Module {
	mod := &Module{
		name:    name,
		classes: map[string]string{},
	}
	mod.css = rewriteSelectors(src, func(class string) string {
		scoped, ok := mod.classes[class]
		if !ok {
			scoped = class + "_" + shortHash(name+"|"+class)
			mod.classes[class] = scoped
		}
		return scoped
	})
	mod.fileName = name + "." + shortHash(mod.css) + ".css"
	return mod
}

// Name returns the module name, the file name without ".module.css".
func (m *Module) Name() string {
	return m.name
}

// Class returns the scoped name of the local class name.
func (m *Module) Class(name string) (string, error) {
	scoped, ok := m.classes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q in module %q", ErrUnknownClass, name, m.name)
	}
	return scoped, nil
}

// ClassNames returns the local class names the module declares, sorted.
func (m *Module) ClassNames() []string {
	names := make([]string, 0, len(m.classes))
	for name := range m.classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CSS returns the compiled stylesheet.
func (m *Module) CSS() string {
	return m.css
}

// FileName returns a file name for the compiled stylesheet that changes
// whenever its contents do.
func (m *Module) FileName() string {
	return m.fileName
}

// Registry holds the compiled modules of a site.
type Registry struct {
	modules map[string]*Module
	files   map[string]*Module
}

// Load compiles every *.module.css file at the root of fsys.
func Load(fsys fs.FS) (*Registry, error) {
	matches, err := fs.Glob(fsys, "*"+fileSuffix)
	if err != nil {
		return nil, fmt.Errorf("error listing CSS modules: %w", err)
	}
	if len(matches) < 1 {
		return nil, ErrNoModules
	}
	reg := &Registry{
		modules: make(map[string]*Module, len(matches)),
		files:   make(map[string]*Module, len(matches)),
	}
	for _, file := range matches {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		mod := Compile(strings.TrimSuffix(path.Base(file), fileSuffix), string(contents))
		reg.modules[mod.Name()] = mod
		reg.files[mod.FileName()] = mod
	}
	return reg, nil
}

// Module returns the module called name.
func (r *Registry) Module(name string) (*Module, error) {
	mod, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, name)
	}
	return mod, nil
}

// Class returns the scoped name of class in module.
func (r *Registry) Class(module, class string) (string, error) {
	mod, err := r.Module(module)
	if err != nil {
		return "", err
	}
	return mod.Class(class)
}

// ByFileName returns the module compiled to fileName, as returned by
// Module.FileName.
func (r *Registry) ByFileName(fileName string) (*Module, bool) {
	mod, ok := r.files[fileName]
	return mod, ok
}

// Modules returns every module, sorted by name.
func (r *Registry) Modules() []*Module {
	mods := make([]*Module, 0, len(r.modules))
	for _, mod := range r.modules {
		mods = append(mods, mod)
	}
	slices.SortFunc(mods, func(a, b *Module) int {
		return strings.Compare(a.name, b.name)
	})
	return mods
}

// Join joins the non-empty class names with single spaces, so optional
// classes can be passed unconditionally.
func Join(classes ...string) string {
	nonEmpty := make([]string, 0, len(classes))
	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class == "" {
			continue
		}
		nonEmpty = append(nonEmpty, class)
	}
	return strings.Join(nonEmpty, " ")
}

func shortHash(s string) string {
	h := strconv.FormatUint(xxhash.Sum64String(s), 36)
	if len(h) < 5 {
		h = strings.Repeat("0", 5-len(h)) + h
	}
	return h[:5]
}

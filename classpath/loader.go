// Package classpath turns parsed Java source into linked introspect classes.
// A Loader always carries the core java.lang and java.util declarations, so
// that user sources can extend and reference them.
package classpath

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/parsing"
	"github.com/NickyBoy89/genresolve/symbol"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ErrClassNotFound is returned when a name does not denote any loaded class
var ErrClassNotFound = errors.New("class not found")

//go:embed jdk
var jdkSources embed.FS

// Loader holds every class loaded from source, indexed by name
type Loader struct {
	mu sync.RWMutex

	// by binary name
	classes map[string]*sourceClass
	// by canonical name, for member and top-level classes
	canonical map[string]*sourceClass
	byScope   map[*symbol.ClassScope]*sourceClass
	missing   map[string]*missingClass

	// type variables declared by methods and constructors
	methodVariables map[*symbol.Definition][]*introspect.TypeVariable
}

// New creates a loader with the bundled core library declarations loaded
func New() (*Loader, error) {
	loader := &Loader{
		classes:         make(map[string]*sourceClass),
		canonical:       make(map[string]*sourceClass),
		byScope:         make(map[*symbol.ClassScope]*sourceClass),
		missing:         make(map[string]*missingClass),
		methodVariables: make(map[*symbol.Definition][]*introspect.TypeVariable),
	}

	var files []parsing.SourceFile
	err := fs.WalkDir(jdkSources, "jdk", func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		source, err := jdkSources.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, parsing.SourceFile{Name: path, Source: source})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading bundled sources: %w", err)
	}
	if err := loader.Load(files...); err != nil {
		return nil, fmt.Errorf("loading bundled sources: %w", err)
	}
	return loader, nil
}

// Load parses the given source files and links their classes. Either every
// class in the batch is loaded, or none are
func (l *Loader) Load(files ...parsing.SourceFile) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var declared []*sourceClass
	rollback := func() {
		for _, class := range declared {
			delete(l.classes, class.Name())
			delete(l.byScope, class.scope)
			if name := class.canonicalName(); name != "" {
				delete(l.canonical, name)
			}
		}
	}

	for i := range files {
		file := &files[i]
		symbols := file.Symbols
		if symbols == nil {
			var err error
			if symbols, err = file.Parse(); err != nil {
				rollback()
				return err
			}
		}
		for _, top := range symbols.TopLevelClasses {
			classes, err := l.declare(symbols, top, nil)
			declared = append(declared, classes...)
			if err != nil {
				rollback()
				return fmt.Errorf("%s: %w", file.Name, err)
			}
		}
	}

	for _, class := range declared {
		l.link(class)
	}

	log.WithFields(log.Fields{
		"files":   len(files),
		"classes": len(declared),
	}).Debug("Loaded source classes")
	return nil
}

// LoadPaths reads every Java file below each path and loads them together
func (l *Loader) LoadPaths(paths ...string) error {
	var files []parsing.SourceFile
	for _, path := range paths {
		found, err := parsing.ReadSourceDir(path)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	return l.Load(files...)
}

// declare registers the class shell and its type variables, along with every
// class declared inside it
func (l *Loader) declare(file *symbol.FileScope, scope *symbol.ClassScope, outer *sourceClass) ([]*sourceClass, error) {
	if _, exists := l.classes[scope.BinaryName]; exists {
		return nil, fmt.Errorf("duplicate class %s", scope.BinaryName)
	}

	class := &sourceClass{
		scope: scope,
		file:  file,
		outer: outer,
	}
	for _, param := range scope.TypeParameters {
		class.typeParameters = append(class.typeParameters, &introspect.TypeVariable{
			Name:        param.Name,
			Declaration: scope.BinaryName,
		})
	}

	l.classes[scope.BinaryName] = class
	l.byScope[scope] = class
	if name := class.canonicalName(); name != "" {
		l.canonical[name] = class
	}

	declared := []*sourceClass{class}
	for _, nested := range append(append([]*symbol.ClassScope{}, scope.Subclasses...), scope.LocalClasses...) {
		classes, err := l.declare(file, nested, class)
		declared = append(declared, classes...)
		if err != nil {
			return declared, err
		}
	}
	return declared, nil
}

// variablesOf returns the type variables declared by a method or constructor,
// creating them on first use so every reference shares the same variable
func (l *Loader) variablesOf(owner *sourceClass, def *symbol.Definition) []*introspect.TypeVariable {
	if variables, ok := l.methodVariables[def]; ok {
		return variables
	}
	variables := make([]*introspect.TypeVariable, len(def.TypeParameters))
	for i, param := range def.TypeParameters {
		variables[i] = &introspect.TypeVariable{
			Name:        param.Name,
			Declaration: owner.Name() + "." + def.Name,
		}
	}
	l.methodVariables[def] = variables
	return variables
}

// ForName looks up a class by binary or canonical name. Primitive keywords,
// `[]` suffixes, JVM array descriptors and unqualified java.lang names are
// accepted as well
func (l *Loader) ForName(name string) (introspect.Class, error) {
	name = strings.TrimSpace(name)
	if class, ok := introspect.Primitive(name); ok {
		return class, nil
	}
	if strings.HasSuffix(name, "[]") {
		component, err := l.ForName(strings.TrimSuffix(name, "[]"))
		if err != nil {
			return nil, err
		}
		return introspect.ArrayOf(component), nil
	}
	if strings.HasPrefix(name, "[") {
		return l.forDescriptor(name[1:])
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if class := l.lookup(name); class != nil {
		return class, nil
	}
	if !strings.Contains(name, ".") {
		if class := l.lookup("java.lang." + name); class != nil {
			return class, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

func (l *Loader) forDescriptor(descriptor string) (introspect.Class, error) {
	if strings.HasPrefix(descriptor, "[") {
		component, err := l.forDescriptor(descriptor[1:])
		if err != nil {
			return nil, err
		}
		return introspect.ArrayOf(component), nil
	}
	if strings.HasPrefix(descriptor, "L") && strings.HasSuffix(descriptor, ";") {
		component, err := l.ForName(descriptor[1 : len(descriptor)-1])
		if err != nil {
			return nil, err
		}
		return introspect.ArrayOf(component), nil
	}
	for _, keyword := range []string{"boolean", "byte", "char", "short", "int", "long", "float", "double"} {
		primitive, _ := introspect.Primitive(keyword)
		if "["+descriptor == introspect.ArrayOf(primitive).Name() {
			return introspect.ArrayOf(primitive), nil
		}
	}
	return nil, fmt.Errorf("%w: malformed array descriptor [%s", ErrClassNotFound, descriptor)
}

// lookup finds a loaded class by binary or canonical name. Callers hold l.mu
func (l *Loader) lookup(name string) *sourceClass {
	if class, ok := l.classes[name]; ok {
		return class
	}
	if class, ok := l.canonical[name]; ok {
		return class
	}
	return nil
}

// Classes lists every loaded class, sorted by binary name
func (l *Loader) Classes() []introspect.Class {
	l.mu.RLock()
	defer l.mu.RUnlock()

	classes := make([]introspect.Class, 0, len(l.classes))
	for _, class := range l.classes {
		classes = append(classes, class)
	}
	slices.SortFunc(classes, func(a, b introspect.Class) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return classes
}

// Missing lists the names that were referenced by loaded sources but could
// not be resolved to any class
func (l *Loader) Missing() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.missing))
	for name := range l.missing {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

package symbol

// FileScope represents the scope in a single source file, that can contain one
// or more source classes
type FileScope struct {
	// The global package that the file is located in
	Package string
	// Every single-type import in the file
	// Formatted as map[ImportedType: full.package.path.ImportedType]
	Imports map[string]string
	// Packages (or classes) imported on demand with `.*`
	WildcardImports []string
	// Top-level classes/interfaces/enums declared in this file, in source order
	TopLevelClasses []*ClassScope
}

// FindClassScope searches for the class scope (not just its definition) by name.
func (fs *FileScope) FindClassScope(name string) *ClassScope {
	for _, top := range fs.TopLevelClasses {
		if scope := top.FindClassScope(name); scope != nil {
			return scope
		}
	}
	return nil
}

// AllClasses lists every class declared in the file, nested ones included
func (fs *FileScope) AllClasses() []*ClassScope {
	var all []*ClassScope
	for _, top := range fs.TopLevelClasses {
		all = append(all, top.AllClasses()...)
	}
	return all
}

// FindField searches through all of the classes in a file and determines if a
// field exists
func (fs *FileScope) FindField() Finder {
	var fields definitionFinder
	for _, class := range fs.AllClasses() {
		fields = append(fields, class.Fields...)
	}
	return &fields
}

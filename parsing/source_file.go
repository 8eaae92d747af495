package parsing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NickyBoy89/genresolve/symbol"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// SourceFile represents a single Java source file, with its parsed tree and symbols
type SourceFile struct {
	Name    string
	Source  []byte
	Ast     *sitter.Node
	Symbols *symbol.FileScope
}

// ReadSourceFile reads a single Java file from disk
func ReadSourceFile(path string) (SourceFile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return SourceFile{}, fmt.Errorf("reading source %s: %w", path, err)
	}
	return SourceFile{Name: path, Source: source}, nil
}

// ReadSourceDir reads every `.java` file below a directory, or the file itself
// when the path points to one
func ReadSourceDir(root string) ([]SourceFile, error) {
	var files []SourceFile
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		file, err := ReadSourceFile(path)
		if err != nil {
			return err
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// ParseAST parses the file's source into a tree-sitter syntax tree. Files with
// syntax errors are rejected, since their declarations cannot be trusted
func (file *SourceFile) ParseAST() error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, file.Source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file.Name, err)
	}
	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			point := bad.StartPoint()
			log.WithFields(log.Fields{
				"file":   file.Name,
				"line":   point.Row + 1,
				"column": point.Column + 1,
			}).Warn("Syntax error in source file")
			return fmt.Errorf("%s:%d:%d: syntax error near %q", file.Name, point.Row+1, point.Column+1, bad.Content(file.Source))
		}
		return fmt.Errorf("%s: syntax error", file.Name)
	}
	file.Ast = root
	return nil
}

func firstError(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstError(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

// ParseSymbols builds the file's symbol table. ParseAST must have succeeded first
func (file *SourceFile) ParseSymbols() *symbol.FileScope {
	file.Symbols = symbol.ParseSymbols(file.Ast, file.Source)
	return file.Symbols
}

// Parse runs ParseAST and ParseSymbols, turning a panic from an unexpected
// node shape into an error
func (file *SourceFile) Parse() (scope *symbol.FileScope, err error) {
	if err := file.ParseAST(); err != nil {
		return nil, err
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%s: unsupported declaration: %v", file.Name, recovered)
		}
	}()
	return file.ParseSymbols(), nil
}

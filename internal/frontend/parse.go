package frontend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
	"go.uber.org/zap"
)

type LanguageType int

const (
	Go LanguageType = iota
	JavaScript
	TypeScript
	Python
	Java
	Unknown
)

func (lt LanguageType) String() string {
	switch lt {
	case Go:
		return "go"
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case Python:
		return "python"
	case Java:
		return "java"
	default:
		return "unknown"
	}
}

func NewLanguageTypeFromString(lang string) LanguageType {
	switch strings.ToLower(lang) {
	case "go":
		return Go
	case "javascript":
		return JavaScript
	case "typescript":
		return TypeScript
	case "python":
		return Python
	case "java":
		return Java
	default:
		return Unknown
	}
}

// FileParser parses source files with tree-sitter and translates them into
// op-tree programs.
type FileParser struct {
	parser *tree_sitter.Parser
	logger *zap.Logger
}

func NewFileParser(logger *zap.Logger) *FileParser {
	return &FileParser{
		parser: tree_sitter.NewParser(),
		logger: logger,
	}
}

func (fp *FileParser) DetectLanguage(filePath string) LanguageType {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".go":
		return Go
	case ".js", ".jsx", ".mjs":
		return JavaScript
	case ".ts", ".tsx":
		return TypeScript
	case ".py", ".pyw":
		return Python
	case ".java":
		return Java
	default:
		return Unknown
	}
}

func (fp *FileParser) GetLanguage(langType LanguageType) (*tree_sitter.Language, error) {
	switch langType {
	case Go:
		return tree_sitter.NewLanguage(golang.Language()), nil
	case JavaScript:
		return tree_sitter.NewLanguage(javascript.Language()), nil
	case TypeScript:
		return tree_sitter.NewLanguage(typescript.LanguageTypescript()), nil
	case Python:
		return tree_sitter.NewLanguage(python.Language()), nil
	case Java:
		return tree_sitter.NewLanguage(java.Language()), nil
	default:
		return nil, fmt.Errorf("unsupported language type: %v", langType)
	}
}

// ParseFile parses one source file, detecting the language from its
// extension, and returns the translated program.
func (fp *FileParser) ParseFile(filePath string) (*Program, error) {
	langType := fp.DetectLanguage(filePath)
	if langType == Unknown {
		return nil, fmt.Errorf("unsupported file type: %s", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	moduleName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return fp.ParseSource(content, langType, moduleName)
}

// ParseSource parses in-memory source content in the given language.
func (fp *FileParser) ParseSource(content []byte, langType LanguageType, moduleName string) (*Program, error) {
	language, err := fp.GetLanguage(langType)
	if err != nil {
		return nil, err
	}

	if err := fp.parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set parser language: %w", err)
	}

	tree := fp.parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", langType)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("no root node found in parsed tree")
	}

	fp.logger.Debug("parsed source",
		zap.Stringer("language", langType),
		zap.String("module", moduleName),
		zap.String("root_kind", rootNode.Kind()))

	translator := NewTranslator(content, fp.logger)
	return translator.Translate(rootNode, moduleName), nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go/ast"
	"go/parser"
	"go/token"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func validateModelPath(path string) (string, error) {
	if path == "" {
		path = "models"
	}

	cleanPath := filepath.Clean(path)

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", fmt.Errorf("invalid model path: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if !strings.HasPrefix(absPath, wd) {
		return "", fmt.Errorf("model path must be within working directory")
	}

	return absPath, nil
}

func createModelRegisterFile(dirPath string) (string, error) {
	filePath := filepath.Join(dirPath, "models_registry.go")

	packageName := filepath.Base(dirPath)
	allModels, err := getModels(dirPath)

	if err != nil {
		return "", err
	}

	content := fmt.Sprintf(`package %s

var ModelTypeRegistry = map[string]interface{}{
%s}
`, packageName, allModels)

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to create model registry file: %w", err)
	}

	return filePath, nil
}

func getModels(dirPath string) (string, error) {
	var allModels []string

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".go") || file.Name() == "models_registry.go" || strings.HasSuffix(file.Name(), "_test.go") {
			continue
		}
		filePath := filepath.Join(dirPath, file.Name())
		modelNames, err := parseModels(filePath)

		if err != nil {
			fmt.Printf("Warning: could not parse models from %s: %v\n", file.Name(), err)
			continue
		}
		allModels = append(allModels, modelNames...)
	}

	var contentBuilder strings.Builder
	for _, name := range allModels {
		contentBuilder.WriteString(fmt.Sprintf("\t\"%s\": %s{},\n", name, name))
	}
	return contentBuilder.String(), nil
}

// parseModels returns the names of model structs in a file: structs that
// embed gorm.Model or carry at least one gorm field tag.
func parseModels(file string) ([]string, error) {
	var modelNames []string

	fset := token.NewFileSet()

	node, err := parser.ParseFile(fset, file, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	ast.Inspect(node, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)

		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)

			if !ok {
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}

			if isModelStruct(structType) {
				modelNames = append(modelNames, typeSpec.Name.Name)
			}
		}
		return true
	})
	return modelNames, nil
}

func isModelStruct(structType *ast.StructType) bool {
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			if selExpr, ok := field.Type.(*ast.SelectorExpr); ok {
				if ident, ok := selExpr.X.(*ast.Ident); ok && ident.Name == "gorm" && selExpr.Sel.Name == "Model" {
					return true
				}
			}
			continue
		}
		if field.Tag != nil && strings.Contains(field.Tag.Value, "gorm:") {
			return true
		}
	}
	return false
}

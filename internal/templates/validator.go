package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// javaIdentifierRegex matches a single ASCII Java identifier.
var javaIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidateJavaIdentifier checks that name is usable as a Java identifier.
func ValidateJavaIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if !javaIdentifierRegex.MatchString(name) {
		return fmt.Errorf("invalid Java identifier %q: must start with a letter or underscore and contain only letters, digits, and underscores", name)
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid Java identifier %q: cannot use reserved word", name)
	}

	return nil
}

// ValidatePackageName checks that pkg is a dotted sequence of Java identifiers.
func ValidatePackageName(pkg string) error {
	if pkg == "" {
		return fmt.Errorf("package name cannot be empty")
	}

	for _, part := range strings.Split(pkg, ".") {
		if err := ValidateJavaIdentifier(part); err != nil {
			return fmt.Errorf("invalid package name %q: %w", pkg, err)
		}
	}
	return nil
}

// isReservedWord reports Java keywords and literals that cannot be identifiers.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"_":            true,
		"abstract":     true,
		"assert":       true,
		"boolean":      true,
		"break":        true,
		"byte":         true,
		"case":         true,
		"catch":        true,
		"char":         true,
		"class":        true,
		"const":        true,
		"continue":     true,
		"default":      true,
		"do":           true,
		"double":       true,
		"else":         true,
		"enum":         true,
		"extends":      true,
		"false":        true,
		"final":        true,
		"finally":      true,
		"float":        true,
		"for":          true,
		"goto":         true,
		"if":           true,
		"implements":   true,
		"import":       true,
		"instanceof":   true,
		"int":          true,
		"interface":    true,
		"long":         true,
		"native":       true,
		"new":          true,
		"null":         true,
		"package":      true,
		"private":      true,
		"protected":    true,
		"public":       true,
		"return":       true,
		"short":        true,
		"static":       true,
		"strictfp":     true,
		"super":        true,
		"switch":       true,
		"synchronized": true,
		"this":         true,
		"throw":        true,
		"throws":       true,
		"transient":    true,
		"true":         true,
		"try":          true,
		"void":         true,
		"volatile":     true,
		"while":        true,
	}
	return reserved[name]
}

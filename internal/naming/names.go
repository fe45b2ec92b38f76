// Package naming derives project names, directories and roots from generator
// input. Every function is pure.
package naming

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	camelBoundary   = regexp.MustCompile(`([a-z\d])([A-Z])`)
	fileNameSpacers = regexp.MustCompile(`[ _]`)
	nonAlnumRun     = regexp.MustCompile(`[^a-zA-Z0-9]+(.)?`)
	nonAlnum        = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Names holds the naming variants of a single input string.
type Names struct {
	Name         string
	ClassName    string
	PropertyName string
	ConstantName string
	FileName     string
}

// NamesOf returns every naming variant of s.
func NamesOf(s string) Names {
	return Names{
		Name:         s,
		ClassName:    ClassName(s),
		PropertyName: PropertyName(s),
		ConstantName: ConstantName(s),
		FileName:     FileName(s),
	}
}

// FileName converts s to kebab-case ("MyApp" and "my_app" become "my-app").
// A leading underscore is kept.
func FileName(s string) string {
	out := strings.ToLower(camelBoundary.ReplaceAllString(s, "$1-$2"))
	if strings.HasPrefix(out, "_") {
		return "_" + fileNameSpacers.ReplaceAllString(out[1:], "-")
	}
	return fileNameSpacers.ReplaceAllString(out, "-")
}

// PropertyName converts s to camelCase.
func PropertyName(s string) string {
	out := nonAlnumRun.ReplaceAllStringFunc(s, func(m string) string {
		sub := nonAlnumRun.FindStringSubmatch(m)
		return strings.ToUpper(sub[1])
	})
	out = nonAlnum.ReplaceAllString(out, "")
	if out == "" {
		return out
	}
	r := []rune(out)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// ClassName converts s to PascalCase.
func ClassName(s string) string {
	p := PropertyName(s)
	if p == "" {
		return p
	}
	r := []rune(p)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ConstantName converts s to CONSTANT_CASE.
func ConstantName(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToUpper(FileName(s)), "_")
}

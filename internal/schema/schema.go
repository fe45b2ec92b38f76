// Package schema validates generator options against the embedded CUE
// definitions.
package schema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

//go:embed generators.cue
var generatorsCUE []byte

// Definitions in generators.cue.
const (
	ParentProject = "#ParentProject"
	Application   = "#Application"
)

// Validator checks option values against a compiled schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(generatorsCUE, cue.Filename("generators.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling generator schema: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate unifies v with the named definition and requires a concrete result.
// Violations are reported as validation errors naming the offending field.
func (v *Validator) Validate(definition string, value any) error {
	def := v.schema.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return fmt.Errorf("schema has no definition %s", definition)
	}

	encoded := v.ctx.Encode(value)
	if encoded.Err() != nil {
		return fmt.Errorf("encoding options: %w", encoded.Err())
	}

	if err := def.Unify(encoded).Validate(cue.Concrete(true)); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError flattens CUE errors for the first offending field.
func toValidationError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return oerrors.NewValidationError(err.Error(), "", "", "")
	}

	byField := make(map[string][]string)
	for _, e := range errs {
		field := fieldPath(e.Path())
		format, args := e.Msg()
		byField[field] = append(byField[field], fmt.Sprintf(format, args...))
	}

	fields := make([]string, 0, len(byField))
	for f := range byField {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	field := fields[0]

	messages := dedupe(byField[field])
	detail := &oerrors.DetailError{
		Type:    "validation failed",
		Message: strings.Join(messages, "; "),
		Field:   field,
		Hint:    fmt.Sprintf("Check the value passed for %q.", field),
		Cause:   oerrors.ErrValidation,
	}
	if len(fields) > 1 {
		detail.Context = map[string]string{"Also invalid": strings.Join(fields[1:], ", ")}
	}
	return detail
}

// fieldPath drops definition selectors so paths name option fields only.
func fieldPath(path []string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		if !strings.HasPrefix(p, "#") {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

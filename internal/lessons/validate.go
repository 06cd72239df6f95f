package lessons

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// compiledPackSchema compiles LessonPackSchema once.
func compiledPackSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go map.
		defBytes, err := json.Marshal(LessonPackSchema.Definition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(defBytes)))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := "schema://" + LessonPackSchema.Name + ".json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded JSON document against the pack schema
// and returns a *SchemaViolationError naming the first failing field.
func validateDocument(doc any) error {
	sch, err := compiledPackSchema()
	if err != nil {
		return fmt.Errorf("compile lesson pack schema: %w", err)
	}

	err = sch.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &SchemaViolationError{Field: "(root)", Err: err}
	}

	fields := leafFields(verr, nil)
	if len(fields) == 0 {
		return &SchemaViolationError{Field: "(root)", Err: err}
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fieldLess(fields[i], fields[j])
	})
	return &SchemaViolationError{Field: formatPath(fields[0].path), Err: errors.New(fields[0].msg)}
}

type fieldError struct {
	path []string
	msg  string
}

// leafFields collects the innermost errors of a validation tree. Missing
// required properties become one entry per missing name.
func leafFields(v *jsonschema.ValidationError, out []fieldError) []fieldError {
	if len(v.Causes) > 0 {
		for _, c := range v.Causes {
			out = leafFields(c, out)
		}
		return out
	}

	if req, ok := v.ErrorKind.(*kind.Required); ok {
		for _, name := range req.Missing {
			path := append(append([]string(nil), v.InstanceLocation...), name)
			out = append(out, fieldError{path: path, msg: "missing required field"})
		}
		return out
	}

	out = append(out, fieldError{
		path: append([]string(nil), v.InstanceLocation...),
		msg:  v.Error(),
	})
	return out
}

func fieldLess(a, b fieldError) bool {
	ra, rb := rank(a.path), rank(b.path)
	if ra != rb {
		return ra < rb
	}
	return formatPath(a.path) < formatPath(b.path)
}

func rank(path []string) int {
	if len(path) == 0 {
		return -1
	}
	if r, ok := fieldOrder[path[0]]; ok {
		return r
	}
	return len(fieldOrder)
}

// formatPath renders ["qa","0","options"] as "qa[0].options".
func formatPath(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	var b strings.Builder
	for i, p := range path {
		if _, err := strconv.Atoi(p); err == nil {
			fmt.Fprintf(&b, "[%s]", p)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// checkSemantics enforces the rules the JSON schema does not express.
// Checks run in field order and stop at the first failure.
func checkSemantics(p LessonPack) error {
	violation := func(field, msg string) error {
		return &SchemaViolationError{Field: field, Err: errors.New(msg)}
	}
	blank := func(s string) bool { return strings.TrimSpace(s) == "" }

	if blank(p.Title) {
		return violation("title", "must not be blank")
	}
	if blank(p.Explanation) {
		return violation("explanation", "must not be blank")
	}
	if err := checkVisualMarkers(p.Explanation); err != nil {
		return violation("explanation", err.Error())
	}
	if blank(p.Animation.Description) {
		return violation("animation.description", "must not be blank")
	}
	for i, q := range p.QA {
		field := fmt.Sprintf("qa[%d]", i)
		if blank(q.Question) {
			return violation(field+".question", "must not be blank")
		}
		if blank(q.Answer) {
			return violation(field+".answer", "must not be blank")
		}
		if q.Kind == KindMultipleChoice {
			if len(q.Options) < 2 {
				return violation(field+".options", "multipleChoice needs at least 2 options")
			}
		} else if len(q.Options) > 0 {
			return violation(field+".options", "only multipleChoice questions have options")
		}
	}
	if blank(p.Activity.Title) {
		return violation("activity.title", "must not be blank")
	}
	for i, s := range p.Activity.Steps {
		if blank(s) {
			return violation(fmt.Sprintf("activity.steps[%d]", i), "must not be blank")
		}
	}
	for i, r := range p.EnrichmentResults {
		if blank(r.ModuleName) {
			return violation(fmt.Sprintf("enrichmentResults[%d].moduleName", i), "must not be blank")
		}
	}
	return nil
}

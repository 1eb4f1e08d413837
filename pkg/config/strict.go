package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Aleph-Alpha/appkit/pkg/redact"
)

// ReservedPrefixes are the variable prefixes owned by this configuration. A
// variable carrying one of them that no field declares is rejected.
var ReservedPrefixes = []string{"APP_", "LOG_", "METRICS_", "TRACING_"}

const keyTemplate = "{{range .}}{{usage_key .}}\n{{end}}"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by the variable that sets them.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if key := f.Tag.Get("envconfig"); key != "" {
			return key
		}
		return f.Name
	})
	return v
}

// declaredKeys returns every variable name the sections read.
func declaredKeys(sections []interface{}) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	for _, section := range sections {
		var buf bytes.Buffer
		if err := envconfig.Usagef("", section, &buf, keyTemplate); err != nil {
			return nil, err
		}
		for _, key := range strings.Fields(buf.String()) {
			keys[key] = struct{}{}
		}
	}
	return keys, nil
}

// checkUndeclared reports reserved-prefix variables nothing declares. Only the
// names are reported.
func checkUndeclared(declared map[string]struct{}, errs *problems) {
	var unknown []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !hasReservedPrefix(name) {
			continue
		}
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs.add(fmt.Sprintf("%s: unknown variable", name))
	}
}

func hasReservedPrefix(name string) bool {
	for _, p := range ReservedPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// describeEnvError turns an envconfig failure into a message without the
// offending value.
func describeEnvError(err error) string {
	var pe *envconfig.ParseError
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s: cannot parse as %s", pe.KeyName, pe.TypeName)
	}
	return err.Error()
}

// describeYAMLError splits a yaml.v3 type error into one problem per line.
func describeYAMLError(path string, err error, errs *problems) {
	var te *yaml.TypeError
	if errors.As(err, &te) {
		for _, e := range te.Errors {
			errs.add(fmt.Sprintf("%s: %s", path, e))
		}
		return
	}
	errs.add(fmt.Sprintf("%s: %v", path, err))
}

var secretType = reflect.TypeOf(redact.Secret(""))

// validateStruct runs the validate tags. Secret values are never echoed.
func validateStruct(cfg Config, errs *problems) {
	err := validate.Struct(cfg)
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		errs.add(err.Error())
		return
	}
	for _, fe := range ves {
		errs.add(describeFieldError(fe))
	}
}

func describeFieldError(fe validator.FieldError) string {
	var rule string
	switch fe.Tag() {
	case "oneof":
		rule = fmt.Sprintf("must be one of [%s]", fe.Param())
	case "required":
		rule = "is required"
	case "url":
		rule = "must be a valid URL"
	default:
		rule = fmt.Sprintf("failed %q", fe.Tag())
	}
	if fe.Type() == secretType {
		return fmt.Sprintf("%s: %s", fe.Field(), rule)
	}
	return fmt.Sprintf("%s: %s, got %q", fe.Field(), rule, fmt.Sprint(fe.Value()))
}

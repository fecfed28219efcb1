// Package validate checks the project and package names typed into the
// generation form. Every field reports at most one message: the first rule it
// violates in the order required, format, length.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names a validated form input
type Field string

const (
	FieldProjectName Field = "projectName"
	FieldPackageName Field = "packageName"
)

// Rule names the violated constraint
type Rule string

const (
	RuleRequired      Rule = "required"
	RuleInvalidFormat Rule = "invalidFormat"
	RuleTooLong       Rule = "tooLong"
)

// Length limits, measured on trimmed input
const (
	MaxProjectNameLength = 50
	MaxPackageNameLength = 100
)

// Errors maps a field to its message. A missing key means the field is valid.
type Errors map[Field]string

// Valid reports whether no field failed
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Get returns the message for a field, or "" when the field is valid
func (e Errors) Get(field Field) string {
	return e[field]
}

var (
	projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	packageNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)
)

// form mirrors the request fields. Tag order defines rule precedence.
type form struct {
	ProjectName string `json:"projectName" validate:"required,project_name,max=50"`
	PackageName string `json:"packageName" validate:"required,package_name,max=100"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister("project_name", projectNamePattern)
	mustRegister("package_name", packageNamePattern)
}

func mustRegister(tag string, pattern *regexp.Regexp) {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// tagRules translates validator tags into rules
var tagRules = map[string]Rule{
	"required":     RuleRequired,
	"project_name": RuleInvalidFormat,
	"package_name": RuleInvalidFormat,
	"max":          RuleTooLong,
}

// Validate checks both names and returns English messages
func Validate(projectName, packageName string) Errors {
	return ValidateLang("en", projectName, packageName)
}

// ValidateLang checks both names and returns messages in the given language,
// falling back to English for unknown languages
func ValidateLang(lang, projectName, packageName string) Errors {
	errs := make(Errors)
	for field, rule := range rules(projectName, packageName) {
		errs[field] = Message(lang, field, rule)
	}
	return errs
}

// Check returns the violated rule of a single field, or "" when it is valid
func Check(field Field, value string) Rule {
	var in form
	switch field {
	case FieldProjectName:
		in.ProjectName = value
		in.PackageName = "a"
	case FieldPackageName:
		in.ProjectName = "a"
		in.PackageName = value
	default:
		return ""
	}
	return rules(in.ProjectName, in.PackageName)[field]
}

func rules(projectName, packageName string) map[Field]Rule {
	in := form{
		ProjectName: strings.TrimSpace(projectName),
		PackageName: strings.TrimSpace(packageName),
	}

	out := make(map[Field]Rule)
	err := validate.Struct(&in)
	if err == nil {
		return out
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return out
	}
	for _, e := range validationErrs {
		field := Field(e.Field())
		if _, seen := out[field]; seen {
			continue
		}
		if rule, ok := tagRules[e.Tag()]; ok {
			out[field] = rule
		}
	}
	return out
}

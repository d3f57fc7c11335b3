package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// agentPoolNamePattern matches AKS node pool names: a lowercase letter
// followed by at most 11 lowercase alphanumerics.
var agentPoolNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]{0,11}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// v returns the shared validator with the custom rules registered.
func v() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(yamlFieldName)
		_ = validate.RegisterValidation("agentPoolName", func(fl validator.FieldLevel) bool {
			return agentPoolNamePattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// yamlFieldName reports fields by their YAML key in validation errors.
func yamlFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks the cluster state for missing or malformed fields.
func (s *ClusterState) Validate() error {
	err := v().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("failed to validate cluster state: %w", err)
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid cluster state:\n  %s", strings.Join(msgs, "\n  "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "ClusterState.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must contain at least %s entry", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicate names", field)
	case "gte":
		return fmt.Sprintf("%s cannot be negative, got %v", field, fe.Value())
	case "agentPoolName":
		return fmt.Sprintf("%s %q must start with a lowercase letter and contain at most 12 lowercase alphanumeric characters", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

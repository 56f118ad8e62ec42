package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sectionIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("section_id", func(fl validator.FieldLevel) bool {
			return sectionIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the manifest.
func Validate(m *Manifest) error {
	if m == nil {
		return pkgerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	index := make(map[string]int, len(m.Sections))
	for i, s := range m.Sections {
		if prev, exists := index[s.ID]; exists {
			return pkgerrors.NewValidationError(
				fmt.Sprintf("sections[%d].id", i),
				fmt.Sprintf("duplicate section id %q (first at sections[%d])", s.ID, prev),
				nil,
			)
		}
		index[s.ID] = i
	}

	seen := make(map[string]struct{}, len(m.Nav))
	last := -1
	for i, id := range m.Nav {
		pos, ok := index[id]
		if !ok {
			return pkgerrors.NewValidationError(fmt.Sprintf("nav[%d]", i), fmt.Sprintf("unknown section %q", id), nil)
		}
		if _, dup := seen[id]; dup {
			return pkgerrors.NewValidationError(fmt.Sprintf("nav[%d]", i), fmt.Sprintf("section %q listed twice", id), nil)
		}
		// The spy walks nav ids in order, so they must follow page order.
		if pos < last {
			return pkgerrors.NewValidationError(fmt.Sprintf("nav[%d]", i), fmt.Sprintf("section %q is out of page order", id), nil)
		}
		seen[id] = struct{}{}
		last = pos
	}

	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pkgerrors.NewValidationError(field, msg, err)
	}

	return pkgerrors.NewValidationError("manifest", err.Error(), err)
}

// yamlishFieldName drops the root type name and lowercases the rest,
// so "Manifest.Sections[2].ID" becomes "sections[2].id".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

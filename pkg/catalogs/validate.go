package catalogs

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/cyberui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// validatorInstance returns the shared validator with the catalog's custom tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// validate checks every record and the cross-record invariants: ids are
// unique and slugs, and a component's subcategory belongs to its category
// when a category tree is present.
func validate(components []Component, categories []Category) error {
	v := validatorInstance()

	seen := make(map[string]struct{}, len(components))
	for i, c := range components {
		if err := v.Struct(c); err != nil {
			return convertValidationError(fmt.Sprintf("components[%d]", i), err)
		}
		if err := v.Var(c.ID, "slug"); err != nil {
			return errors.NewValidationError(fmt.Sprintf("components[%d].id", i), c.ID, "id must be a lowercase slug")
		}
		if _, dup := seen[c.ID]; dup {
			return errors.NewValidationError(fmt.Sprintf("components[%d].id", i), c.ID, "duplicate component id")
		}
		seen[c.ID] = struct{}{}
	}

	slugs := make(map[string]Category, len(categories))
	for i, cat := range categories {
		if err := v.Struct(cat); err != nil {
			return convertValidationError(fmt.Sprintf("categories[%d]", i), err)
		}
		if _, dup := slugs[cat.Slug]; dup {
			return errors.NewValidationError(fmt.Sprintf("categories[%d].slug", i), cat.Slug, "duplicate category slug")
		}
		slugs[cat.Slug] = cat
	}

	if len(categories) == 0 {
		return nil
	}
	for i, c := range components {
		if c.Subcategory == "" {
			continue
		}
		parent, ok := slugs[string(c.Category)]
		if !ok {
			return errors.NewValidationError(fmt.Sprintf("components[%d].category", i), c.Category, "category not in category tree")
		}
		if !parent.HasSubcategory(c.Subcategory) {
			return errors.NewValidationError(fmt.Sprintf("components[%d].subcategory", i), c.Subcategory,
				fmt.Sprintf("subcategory not listed under %s", parent.Slug))
		}
	}
	return nil
}

func convertValidationError(prefix string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := prefix + "." + yamlishFieldName(fe)
		return errors.NewValidationError(field, fe.Value(),
			fmt.Sprintf("failed validation for tag '%s'", fe.Tag()))
	}
	return errors.WrapValidation(prefix, err)
}

// yamlishFieldName turns "Component.Props[0].Name" into "props[0].name".
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

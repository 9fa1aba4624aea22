// Package playground assembles example page source from a selection of
// catalog components.
//
// Generation is plain string assembly. Imports are deduplicated by
// identifier in first-appearance order; body fragments are not deduplicated
// and keep the selection order.
package playground

import (
	"strings"
	"unicode"

	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/constants"
)

// Selected identifies one chosen component. Name is used to derive the
// import identifier, so it is carried even for ids the catalog lacks.
type Selected struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const (
	bodySeparator = "\n\n      "

	pageHeader = "\n\nexport default function MyPage() {\n" +
		"  return (\n" +
		"    <div className=\"flex flex-col gap-6 p-8\">\n" +
		"      "

	pageFooter = "\n" +
		"    </div>\n" +
		"  )\n" +
		"}"
)

// Identifier removes every whitespace character from name, using the
// ECMAScript definition of whitespace and line terminators. It differs from
// unicode.IsSpace: U+FEFF is removed and U+0085 is kept.
func Identifier(name string) string {
	return strings.Map(func(r rune) rune {
		if isWhitespace(r) {
			return -1
		}
		return r
	}, name)
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// ImportLine returns the import statement for identifier.
func ImportLine(identifier string) string {
	return "import " + identifier + " from '" + constants.ImportPathPrefix + identifier + "'"
}

// GenerateCode returns the page source for selected. Catalog components
// contribute their code snippet; unknown ids contribute a self-closing tag
// built from the selected name. An empty selection yields a placeholder
// comment.
func GenerateCode(cat catalogs.Reader, selected []Selected) string {
	if len(selected) == 0 {
		return constants.EmptyPlaygroundCode
	}

	seen := make(map[string]struct{}, len(selected))
	imports := make([]string, 0, len(selected))
	body := make([]string, 0, len(selected))

	for _, s := range selected {
		identifier := Identifier(s.Name)
		if _, ok := seen[identifier]; !ok {
			seen[identifier] = struct{}{}
			imports = append(imports, ImportLine(identifier))
		}

		if c, ok := cat.Component(s.ID); ok {
			body = append(body, c.Code)
		} else {
			body = append(body, "<"+identifier+" />")
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(imports, "\n"))
	b.WriteString(pageHeader)
	b.WriteString(strings.Join(body, bodySeparator))
	b.WriteString(pageFooter)
	return b.String()
}

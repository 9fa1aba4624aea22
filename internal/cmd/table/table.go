// Package table converts catalog records into rows for tabular CLI output.
package table

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/cyberui/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// maxDescription bounds the description column in wide output.
const maxDescription = 60

var titleCaser = cases.Title(language.English)

// ComponentsToTableData converts components to table format. Wide output
// adds the variant list and the description.
func ComponentsToTableData(components []catalogs.Component, wide bool) Data {
	headers := []string{"ID", "NAME", "CATEGORY", "SUBCATEGORY", "PROPS"}
	align := []Align{AlignDefault, AlignDefault, AlignDefault, AlignDefault, AlignCenter}
	if wide {
		headers = append(headers, "VARIANTS", "DESCRIPTION")
		align = append(align, AlignDefault, AlignDefault)
	}

	rows := make([][]string, 0, len(components))
	for _, c := range components {
		row := []string{
			c.ID,
			c.Name,
			Label(c.Category.String()),
			Label(c.Subcategory),
			strconv.Itoa(len(c.Props)),
		}
		if wide {
			row = append(row, orDash(strings.Join(c.Variants, ", ")), Truncate(c.Description, maxDescription))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// CategoriesToTableData flattens the category tree. Subcategories are
// indented under their parent and show the number of components filed
// under them.
func CategoriesToTableData(categories []catalogs.Category, components []catalogs.Component) Data {
	perSub := make(map[string]int)
	for _, c := range components {
		perSub[c.Category.String()+"/"+c.Subcategory]++
	}

	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, []string{cat.Name, cat.Slug, strconv.Itoa(cat.Count)})
		for _, sub := range cat.Subcategories {
			rows = append(rows, []string{
				"  " + sub.Name,
				sub.Slug,
				strconv.Itoa(perSub[cat.Slug+"/"+sub.Slug]),
			})
		}
	}

	return Data{
		Headers:         []string{"NAME", "SLUG", "COMPONENTS"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignDefault, AlignCenter},
	}
}

// PropsToTableData converts a component's prop descriptors to table format.
func PropsToTableData(props []catalogs.Prop) Data {
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		rows = append(rows, []string{p.Name, p.Type, orDash(p.Default), orDash(p.Description)})
	}
	return Data{
		Headers: []string{"PROP", "TYPE", "DEFAULT", "DESCRIPTION"},
		Rows:    rows,
	}
}

// Label turns a slug such as "text-effects" into "Text Effects".
func Label(slug string) string {
	if slug == "" {
		return "-"
	}
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

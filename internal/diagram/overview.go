package diagram

import (
	"github.com/go-openapi/inflect"

	"github.com/johnwards/temple/internal/domain"
)

// kindLabels maps the slugs of the built-in attribute types to their
// diagram labels.
var kindLabels = map[string]string{
	"string":  "String",
	"integer": "Integer",
	"int64":   "Integer",
	"boolean": "Boolean",
	"bool":    "Boolean",
}

// KindLabel returns the member type shown for an attribute of type t.
// Built-in types use the fixed table; other types show their camelized slug
// ("big-int" becomes "BigInt").
func KindLabel(t domain.AttributeType) string {
	if label, ok := kindLabels[t.Slug]; ok {
		return label
	}
	if label := inflect.Camelize(t.Slug); label != "" {
		return label
	}
	return t.Name
}

// FromOverviews converts model overviews into diagram classes and arrows,
// keeping the overview order and, within each overview, fetch order.
func FromOverviews(overviews []domain.ModelOverview) ([]Class, []Association) {
	classes := make([]Class, 0, len(overviews))
	var associations []Association

	for _, o := range overviews {
		class := Class{Name: o.Model.Name, Attributes: make([]Attribute, 0, len(o.Attributes))}
		for _, a := range o.Attributes {
			class.Attributes = append(class.Attributes, Attribute{Kind: KindLabel(a.Type), Name: a.Name})
		}
		classes = append(classes, class)

		for _, a := range o.Associations {
			associations = append(associations, Association{
				Owner:       o.Model.Name,
				Associated:  a.Model.Name,
				Description: domain.Deref(a.Description),
			})
		}
	}
	return classes, associations
}

// Overviews renders the diagram of one or more model overviews.
func Overviews(overviews ...domain.ModelOverview) string {
	return Render(FromOverviews(overviews))
}

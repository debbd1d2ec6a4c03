package query

import "strings"

// DefaultPageType is the document type holding hero blocks.
const DefaultPageType = "page"

// PageGROQ returns a query selecting one document of documentType by the
// `$slug` parameter and projecting every block through the given projections.
// Blocks matching none of them keep only their `_type` and `_key`.
func PageGROQ(documentType string, projections ...Projection) string {
	if documentType == "" {
		documentType = DefaultPageType
	}
	if len(projections) == 0 {
		projections = []Projection{HeroFlex()}
	}

	var b strings.Builder
	b.WriteString(`*[_type == "`)
	b.WriteString(documentType)
	b.WriteString(`" && slug.current == $slug][0]{` + "\n")
	b.WriteString("  _id,\n  title,\n  blocks[]{\n    _type,\n    _key,\n")
	for i, p := range projections {
		indent(&b, 2)
		writeConditional(&b, p, 2)
		if i < len(projections)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }\n}")
	return b.String()
}

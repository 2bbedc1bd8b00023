package constant

// Catalog file conventions.
const (
	// CatalogSeparator divides the title, id and tags fields of a catalog line.
	CatalogSeparator = "|"

	// TagSeparator divides individual tags inside the tags field.
	TagSeparator = ","

	// CatalogComment starts a line that is ignored.
	CatalogComment = "#"
)

// CatalogTemplate is written by "vidplay catalog init" as a starting point.
const CatalogTemplate = `# {{ .App }} catalog
#
# One video per line:
#   title | id | tag1,tag2
#
# Lines starting with '#' are ignored. Ids must be unique.

Amazing Cats | amazing_cats_video_id | #cat,#animal
`

// Package key defines the canonical set of configuration identifiers.
package key

// Catalog source.
const (
	CatalogPath = "catalog.path"
)

// Interactive shell.
const (
	ShellPrompt  = "shell.prompt"
	ShellWelcome = "shell.welcome"
)

// Search history and suggestions.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRememberQueries      = "search.remember_queries"
)

// Output rendering.
const (
	RenderMaxWidth = "render.max_width"
	RenderIcons    = "render.icons"
	IconsVariant   = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored = "cli.colored"
)

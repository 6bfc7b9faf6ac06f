package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Parse Errors (H001-H019)
	// ============================================

	"H001": {
		Category: CategoryParse,
		Message:  "Invalid HTML input",
		Detail:   "The server-rendered markup could not be parsed.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H001",
	},
	"H002": {
		Category: CategoryParse,
		Message:  "Invalid expected tree",
		Detail:   "The expected tree JSON could not be decoded. Each node needs a \"kind\" of element, text, fragment, or raw.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H002",
	},
	"H003": {
		Category: CategoryParse,
		Message:  "Expected tree too deep",
		Detail:   "The expected tree exceeds the maximum nesting depth. Deeply nested input is rejected to protect the decoder.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H003",
	},
	"H004": {
		Category: CategoryParse,
		Message:  "Element node missing tag",
		Detail:   "An element node in the expected tree has no tag name.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H004",
	},

	// ============================================
	// Hydration Errors (H040-H059)
	// ============================================

	"H040": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: element type differs",
		Detail:   "The server-rendered element type doesn't match what the client expected. This usually means the tree renders differently on client vs server.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H040",
	},
	"H041": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: text content differs",
		Detail:   "The server-rendered text doesn't match what the client expected. This can happen when rendering values that change between requests, like timestamps.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H041",
	},
	"H042": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: attribute differs",
		Detail:   "An attribute value differs between server and client rendering.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H042",
	},
	"H043": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: missing node",
		Detail:   "The client expected a node the server-rendered markup doesn't contain.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H043",
	},
	"H044": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch: unexpected node",
		Detail:   "The server-rendered markup contains a node the client render has no use for.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H044",
	},

	// ============================================
	// Configuration Errors (H120-H139)
	// ============================================

	"H120": {
		Category: CategoryConfig,
		Message:  "Invalid hydrate.json",
		Detail:   "The hydrate.json configuration file is malformed.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H120",
	},
	"H121": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H121",
	},
	"H122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is invalid or already in use.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H122",
	},

	// ============================================
	// CLI Errors (H140-H159)
	// ============================================

	"H140": {
		Category: CategoryCLI,
		Message:  "Markup file not found",
		Detail:   "The server-rendered HTML file doesn't exist or can't be read.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H140",
	},
	"H141": {
		Category: CategoryCLI,
		Message:  "Expected tree file not found",
		Detail:   "The expected tree JSON file doesn't exist or can't be read.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H141",
	},
	"H142": {
		Category: CategoryCLI,
		Message:  "Check found mismatches",
		Detail:   "The expected tree does not hydrate cleanly against the provided markup.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H142",
	},

	// ============================================
	// Report Errors (H160-H179)
	// ============================================

	"H160": {
		Category: CategoryReport,
		Message:  "Report upload failed",
		Detail:   "The mismatch report could not be stored.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H160",
	},
	"H161": {
		Category: CategoryReport,
		Message:  "Report store not configured",
		Detail:   "Report uploads need a bucket name in hydrate.json.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H161",
	},

	// ============================================
	// Server Errors (H180-H199)
	// ============================================

	"H180": {
		Category: CategoryServer,
		Message:  "WebSocket upgrade failed",
		Detail:   "Unable to upgrade the overlay connection to a WebSocket.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H180",
	},
	"H181": {
		Category: CategoryServer,
		Message:  "Invalid check request",
		Detail:   "The check request body could not be decoded.",
		DocURL:   "https://hydrate.vango.dev/docs/errors/H181",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

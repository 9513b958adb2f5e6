package handlers

import "github.com/bundlekit/ruleset/pkg/rules"

// Default returns the standard ordered handler list for the bundler rule
// vocabulary. The order is explicit and fixed: handlers are consulted in
// exactly this sequence for every compiled rule.
func Default() []rules.Handler {
	return []rules.Handler{
		NewMatchHandler(),
		NewPropertyMatchHandler("issuer", rules.Property("issuer")),
		NewPropertyMatchHandler("resourceQuery", rules.Property("query")),
		NewPropertyMatchHandler("resourceFragment", rules.Property("fragment")),
		NewPropertyMatchHandler("scheme", rules.Property("scheme")),
		NewPropertyMatchHandler("mimetype", rules.Property("mimetype")),
		NewPropertyMatchHandler("dependency", rules.Property("dependency")),
		NewPropertyMatchHandler("compiler", rules.Property("compiler")),
		NewPropertyMatchHandler("issuerLayer", rules.Property("issuerLayer")),
		NewNestedMatchHandler("descriptionData", "descriptionData"),
		NewNestedMatchHandler("with", "with"),
		NewStaticEffectHandler("type", "sideEffects", "enforce", "parser", "resolve", "generator", "layer"),
		NewUseHandler(),
	}
}

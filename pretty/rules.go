package pretty

// modulePath is the import-path noise the default rules strip.
const modulePath = "github.com/purpleposeidon/ezty"

// DefaultRules returns the built-in prefix→alias table. Callers that need a
// different table build their own Prettifier (see New and ParseRules); this
// list is the compiled-in baseline, not a mutable global.
//
// Order matters: rules are tried first to last. Several entries sharing a
// prefix is intentional, they disambiguate on the alias that follows.
func DefaultRules() []Rule {
	return []Rule{
		{Prefix: modulePath + "/collections.", Alias: "Vec"},
		{Prefix: modulePath + "/collections.", Alias: "Pair"},
		{Prefix: modulePath + "/anydebug.", Alias: "Value"},
		{Prefix: modulePath + ".", Alias: "Ty"},
		{Prefix: modulePath + ".", Alias: "LTy"},
		{Prefix: modulePath + ".", Alias: "TypeID"},
	}
}

package wordlist

// builtinWords is the embedded fallback vocabulary used when the remote
// fetch fails and no usable cache exists.
var builtinWords = []string{
	"fiets", "tulp", "kaas", "klompen", "windmolen", "stroopwafel", "oranje",
	"water", "polder", "bloem", "koning", "stamppot", "gracht", "gezellig",
	"dijk", "markt", "museum", "trein", "strand", "tuin", "school", "brood",
}

// BuiltinWords returns a copy of the embedded fallback list.
func BuiltinWords() []string {
	words := make([]string, len(builtinWords))
	copy(words, builtinWords)
	return words
}

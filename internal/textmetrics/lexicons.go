package textmetrics

// #region lexicons

// The system converses primarily in French; these lists carry over from the
// tuning runs and are treated as fixed domain data, not configuration.

// redundancyPhrases are discourse connectors whose overuse signals filler.
var redundancyPhrases = []string{
	"en fait", "en réalité", "c'est-à-dire", "autrement dit",
	"donc", "par conséquent", "ainsi", "de ce fait",
	"cependant", "néanmoins", "toutefois", "pourtant",
}

// logicalConnectors signal argumentative structure between sentences.
var logicalConnectors = []string{
	"ainsi", "donc", "par conséquent", "cependant", "néanmoins",
	"en effet", "de plus", "en outre", "finalement", "en conclusion",
}

// transitionWords signal ordered progression.
var transitionWords = []string{
	"d'abord", "ensuite", "puis", "enfin", "premièrement", "deuxièmement",
}

// syntaxPhrases mark concession, purpose, and consequence clauses.
var syntaxPhrases = []string{
	"bien que", "quoique", "malgré que",
	"afin que", "pour que", "de sorte que",
	"si bien que", "de telle sorte que",
}

// depthHigh..depthLow grade emotional register. Low words are a penalty.
var (
	depthHigh = []string{
		"profond", "intime", "essentiel", "fondamental", "transcendant",
		"existentiel", "viscéral", "authentique",
	}
	depthMedium = []string{
		"important", "significatif", "remarquable", "personnel",
		"touchant", "émouvant",
	}
	depthLow = []string{"intéressant", "sympa", "cool", "bien", "ok"}
)

// introspectionWords are first-person markers counted as whole tokens.
var introspectionWords = map[string]bool{
	"je": true, "mon": true, "ma": true, "mes": true,
}

// existentialPhrases mark questioning of meaning or nature.
var existentialPhrases = []string{
	"pourquoi", "qu'est-ce que", "que signifie",
	"sens de", "nature de", "essence de",
}

// stopwords are excluded from the lexical-overlap relevance measure.
var stopwords = map[string]bool{
	"le": true, "la": true, "les": true, "un": true, "une": true,
	"des": true, "de": true, "du": true, "et": true, "ou": true,
	"mais": true, "que": true, "qui": true, "quoi": true, "dont": true,
	"ce": true, "cette": true, "ces": true, "est": true, "sont": true,
	"être": true, "avoir": true, "dans": true, "sur": true, "sous": true,
	"avec": true, "sans": true, "pour": true, "par": true, "pas": true,
	"ne": true, "se": true, "sa": true, "son": true, "ses": true,
	"nous": true, "vous": true, "ils": true, "elles": true, "il": true,
	"elle": true, "au": true, "aux": true, "en": true, "y": true,
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"and": true, "or": true, "of": true, "to": true, "in": true,
	"on": true, "it": true, "that": true, "this": true, "what": true,
}

// #endregion lexicons

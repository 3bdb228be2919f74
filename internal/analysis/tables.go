package analysis

// patternGroup maps one finding subtype to its ordered candidate keywords.
// Slice order is the contract: the first keyword found in the text wins and
// scanning stops for that subtype.
type patternGroup struct {
	subtype  string
	keywords []string
}

var riskPatterns = []patternGroup{
	{"штрафные санкции", []string{"штраф", "пеня", "неустойка", "санкции"}},
	{"односторонние условия", []string{"односторонн", "в любое время", "по своему усмотрению", "вправе расторгнуть"}},
	{"высокая ответственность", []string{"полная ответственность", "возмещение всех", "солидарная ответственность"}},
	{"неопределенные сроки", []string{"разумный срок", "в кратчайшие сроки", "незамедлительно", "без промедления"}},
	{"финансовые риски", []string{"за свой счет", "без возмещения", "безвозмездно", "убытки покупателя"}},
}

var benefitPatterns = []patternGroup{
	{"гарантии", []string{"гарантия", "гарантирует", "обязуется"}},
	{"защита интересов", []string{"страхование", "компенсация", "возмещение"}},
	{"гибкие условия", []string{"по согласованию", "возможность изменения", "право выбора"}},
	{"возврат средств", []string{"возврат", "возмещение платежа", "компенсация расходов"}},
}

var unclearPhrases = []string{
	"в установленном порядке",
	"соответствующие меры",
	"надлежащим образом",
	"разумный срок",
	"существенные нарушения",
	"форс-мажорные обстоятельства",
	"иные обстоятельства",
	"по обоюдному согласию",
	"в исключительных случаях",
}

// A matched risk keyword containing any of these fragments is rated
// high-severity; a benefit keyword containing the guarantee fragment is
// rated high-value.
var highSeverityFragments = []string{"штраф", "полная ответственность"}

const highValueFragment = "гарантия"

package analysis

import (
	"fmt"
	"strings"
)

// Rate reduces risk findings to the overall document rating. Any
// high-severity risk makes the document рискован; any risk at all demands
// attention; a document without risk findings is безопасен.
func Rate(risks []Risk) string {
	for _, r := range risks {
		if r.Severity == SeverityHigh {
			return RatingRisky
		}
	}
	if len(risks) > 0 {
		return RatingNeedsAttention
	}
	return RatingSafe
}

// Summarize renders the human-readable analysis summary. Recommendation
// lines are emitted only when their gating condition holds.
func Summarize(fileName string, risks []Risk, benefits []Benefit, unclear []UnclearTerm, rating string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Документ '%s' проанализирован:\n\n", fileName)
	b.WriteString("🔍 ОСНОВНЫЕ НАХОДКИ:\n")
	fmt.Fprintf(&b, "• Рисков найдено: %d\n", len(risks))
	fmt.Fprintf(&b, "• Выгодных условий: %d\n", len(benefits))
	fmt.Fprintf(&b, "• Неясных формулировок: %d\n\n", len(unclear))
	fmt.Fprintf(&b, "⚖️ ОБЩАЯ ОЦЕНКА: %s\n\n", strings.ToUpper(rating))
	b.WriteString("💡 РЕКОМЕНДАЦИИ:\n")
	if hasPenaltyRisk(risks) {
		b.WriteString("• Обратите особое внимание на штрафные санкции\n")
	}
	if len(unclear) > 0 {
		b.WriteString("• Уточните неопределенные формулировки\n")
	}
	if len(benefits) > 0 {
		b.WriteString("• Используйте найденные гарантии в свою пользу\n")
	}
	b.WriteString("\n📋 Этот анализ основан на базовых правилах. Для детального изучения рекомендуется консультация с юристом.")
	return b.String()
}

func hasPenaltyRisk(risks []Risk) bool {
	for _, r := range risks {
		if strings.Contains(r.Keyword, "штраф") {
			return true
		}
	}
	return false
}

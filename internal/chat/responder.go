package chat

import (
	"fmt"
	"strings"

	"github.com/AlanJumabayev/SafeDocs/internal/analysis"
	"github.com/AlanJumabayev/SafeDocs/internal/documents"
)

// intent is one of the five fixed question families. Classification order
// is priority order: a question matching several families receives the
// response of the earliest one.
type intent int

const (
	intentRisks intent = iota
	intentBenefits
	intentUnclear
	intentDecision
	intentFallback
)

var intentFamilies = []struct {
	intent   intent
	keywords []string
}{
	{intentRisks, []string{"риск", "опасн", "штраф"}},
	{intentBenefits, []string{"выгод", "плюс", "хорош"}},
	{intentUnclear, []string{"непонятн", "неясн", "что означает"}},
	{intentDecision, []string{"подписывать", "согласиться", "стоит ли"}},
}

// Respond answers a free-text question from the findings of a prior
// analysis. It is pure: the analysis is never mutated and identical inputs
// produce identical answers.
func Respond(doc documents.Analysis, question string) string {
	switch classify(question) {
	case intentRisks:
		return renderRisks(doc.Risks)
	case intentBenefits:
		return renderBenefits(doc.Benefits)
	case intentUnclear:
		return renderUnclear(doc.UnclearTerms)
	case intentDecision:
		return renderDecision(doc.OverallRating)
	default:
		return renderFallback(doc.FileName)
	}
}

func classify(question string) intent {
	lower := strings.ToLower(question)
	for _, family := range intentFamilies {
		for _, keyword := range family.keywords {
			if strings.Contains(lower, keyword) {
				return family.intent
			}
		}
	}
	return intentFallback
}

func renderRisks(risks []analysis.Risk) string {
	if len(risks) == 0 {
		return "В документе не найдено серьезных рисков."
	}
	var b strings.Builder
	b.WriteString("🚨 В документе найдены следующие риски:\n\n")
	for _, r := range risks {
		fmt.Fprintf(&b, "• %s: %s\n", r.Type, r.Recommendation)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBenefits(benefits []analysis.Benefit) string {
	if len(benefits) == 0 {
		return "Явных выгодных условий не найдено."
	}
	var b strings.Builder
	b.WriteString("✅ Выгодные условия в документе:\n\n")
	for _, benefit := range benefits {
		fmt.Fprintf(&b, "• %s: %s\n", benefit.Type, benefit.Keyword)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderUnclear(terms []analysis.UnclearTerm) string {
	if len(terms) == 0 {
		return "Все формулировки достаточно понятны."
	}
	var b strings.Builder
	b.WriteString("❓ Неясные формулировки:\n\n")
	for _, term := range terms {
		fmt.Fprintf(&b, "• %s: %s\n", term.Phrase, term.Explanation)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDecision(rating string) string {
	verdict := "✅ Документ выглядит относительно безопасным."
	if rating != analysis.RatingSafe {
		verdict = "⚠️ Рекомендую внимательно изучить риски перед подписанием."
	}
	var b strings.Builder
	b.WriteString("🤔 Рекомендация по документу:\n\n")
	fmt.Fprintf(&b, "Общая оценка: %s\n\n", rating)
	b.WriteString(verdict)
	b.WriteString("\n\n💡 Советую:\n")
	b.WriteString("1. Проконсультироваться с юристом\n")
	b.WriteString("2. Обратить внимание на найденные риски\n")
	b.WriteString("3. Уточнить неясные формулировки\n\n")
	b.WriteString("Помните: это базовый анализ, окончательное решение за вами!")
	return b.String()
}

func renderFallback(fileName string) string {
	var b strings.Builder
	b.WriteString("💬 Спасибо за вопрос!\n\n")
	fmt.Fprintf(&b, "Я проанализировал ваш документ \"%s\" и могу ответить на вопросы о:\n", fileName)
	b.WriteString("• Рисках в договоре\n")
	b.WriteString("• Выгодных условиях\n")
	b.WriteString("• Неясных формулировках\n")
	b.WriteString("• Рекомендациях по подписанию\n\n")
	b.WriteString("Попробуйте спросить: \"Какие есть риски?\" или \"Стоит ли подписывать?\"")
	return b.String()
}

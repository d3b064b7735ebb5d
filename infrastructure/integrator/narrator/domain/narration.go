package domain

// NarrationKind identifica o tipo de narrativa pedida ao modelo.
type NarrationKind string

const (
	KindCreatorInsights NarrationKind = "creator_insights"
	KindNicheReport     NarrationKind = "niche_report"
	KindRateExplanation NarrationKind = "rate_explanation"
)

// NarrationRequest carrega o prompt montado pelos usecases e o tipo de
// narrativa, para fins de log e auditoria.
type NarrationRequest struct {
	Kind         NarrationKind
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

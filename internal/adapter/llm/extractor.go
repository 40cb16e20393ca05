package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"duitbot/internal/domain"
)

// Extractor turns transaction messages and receipt photos into validated
// candidate batches. It runs a stricter prompt than the classifier: the
// model must answer with a bare JSON array.
type Extractor struct {
	client *Client
	logger zerolog.Logger
}

// NewExtractor creates a transaction extractor backed by the shared client.
func NewExtractor(client *Client, logger zerolog.Logger) *Extractor {
	return &Extractor{client: client, logger: logger}
}

func (e *Extractor) ExtractText(ctx context.Context, text string, history []domain.ChatMessage, asOf time.Time) ([]domain.TransactionCandidate, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := "user"
		if msg.Role == domain.RoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}

	prompt := renderPrompt(extractInstruction, asOf) + "\nPesan pengguna:\n" + text
	contents = append(contents, userText(prompt)...)

	raw, err := e.client.generate(ctx, "extract_text", contents)
	if err != nil {
		return nil, err
	}

	return e.parse(raw, asOf)
}

func (e *Extractor) ExtractReceipt(ctx context.Context, image []byte, mimeType string, asOf time.Time) ([]domain.TransactionCandidate, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: renderPrompt(receiptInstruction, asOf)},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
			},
		},
	}

	raw, err := e.client.generate(ctx, "extract_receipt", contents)
	if err != nil {
		return nil, err
	}

	return e.parse(raw, asOf)
}

func (e *Extractor) parse(raw string, asOf time.Time) ([]domain.TransactionCandidate, error) {
	candidates, err := parseCandidates(raw, asOf)
	if err != nil {
		e.logger.Warn().Err(err).Str("raw", raw).Msg("unparseable extractor output")
		return nil, err
	}

	return candidates, nil
}

// candidatePayload is the extraction wire schema. Dates arrive as
// "YYYY-MM-DD HH:MM:SS" strings, so time.Time cannot decode them directly.
type candidatePayload struct {
	Date         string           `json:"date"`
	ActivityName string           `json:"activityName"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	FlowType     string           `json:"flowType"`
	ItemType     string           `json:"itemType"`
	Price        *decimal.Decimal `json:"price"`
	Wallet       string           `json:"wallet"`
}

// parseCandidates decodes, defaults, and validates a candidate batch.
// Malformed JSON yields ErrExtractionParse; a schema violation in any
// item yields a ValidationError rejecting the whole batch.
func parseCandidates(raw string, asOf time.Time) ([]domain.TransactionCandidate, error) {
	clean := stripFences(raw)

	var payloads []candidatePayload
	if err := json.Unmarshal([]byte(clean), &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionParse, err)
	}

	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: empty batch", domain.ErrExtractionParse)
	}

	candidates := make([]domain.TransactionCandidate, 0, len(payloads))
	for _, p := range payloads {
		c := domain.TransactionCandidate{
			Date:         asOf,
			ActivityName: strings.TrimSpace(p.ActivityName),
			Quantity:     p.Quantity,
			Unit:         p.Unit,
			FlowType:     domain.FlowType(p.FlowType),
			ItemType:     domain.ItemType(p.ItemType),
			Price:        p.Price,
			WalletName:   strings.TrimSpace(p.Wallet),
		}

		if t, err := parseWireTime(p.Date); err == nil {
			c.Date = t
		}
		if c.Quantity.IsZero() {
			c.Quantity = decimal.NewFromInt(1)
		}
		if c.Unit == "" {
			c.Unit = domain.DefaultUnit
		}
		if c.WalletName == "" {
			c.WalletName = domain.DefaultWalletName
		}

		candidates = append(candidates, c)
	}

	if err := domain.ValidateCandidates(candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

// parseWireTime accepts the full prompt timestamp layout and the bare
// date the model sometimes falls back to.
func parseWireTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(wireTimeLayout, s); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", s)
}

// stripFences peels Markdown code fences off model output that ignored
// the no-fence instruction.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	return s
}

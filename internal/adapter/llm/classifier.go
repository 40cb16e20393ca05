package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"duitbot/internal/domain"
)

// Classifier maps free-form user messages onto the recognized intents.
type Classifier struct {
	client *Client
	logger zerolog.Logger
}

// NewClassifier creates an intent classifier backed by the shared client.
func NewClassifier(client *Client, logger zerolog.Logger) *Classifier {
	return &Classifier{client: client, logger: logger}
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.IntentResult, error) {
	prompt := renderPrompt(classifyInstruction, time.Now().UTC()) + "\nPesan pengguna:\n" + text

	raw, err := c.client.generate(ctx, "classify", userText(prompt))
	if err != nil {
		return nil, err
	}

	result, err := parseIntentEnvelope(raw)
	if err != nil {
		c.logger.Warn().Err(err).Str("raw", raw).Msg("unparseable classifier output")
		return nil, err
	}

	c.logger.Info().Str("intent", string(result.Intent())).Msg("message classified")

	return result, nil
}

// intentEnvelope is the wire shape the classifier prompt asks for.
// content is intent-specific, so it stays raw until the intent is known.
type intentEnvelope struct {
	Intent  domain.Intent   `json:"intent"`
	Content json.RawMessage `json:"content"`
}

type addWalletPayload struct {
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

type transferWalletPayload struct {
	SourceWallet string          `json:"sourceWallet"`
	TargetWallet string          `json:"targetWallet"`
	Nominal      decimal.Decimal `json:"nominal"`
	Fee          decimal.Decimal `json:"fee"`
}

type reportPayload struct {
	DateRange struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dateRange"`
	FlowType []string `json:"flowType"`
	Wallet   *string  `json:"wallet"`
}

func parseIntentEnvelope(raw string) (domain.IntentResult, error) {
	clean := stripFences(raw)

	var env intentEnvelope
	if err := json.Unmarshal([]byte(clean), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedModelOutput, err)
	}

	switch env.Intent {
	case domain.IntentRecordTransaction:
		return domain.RecordTransactionIntent{}, nil

	case domain.IntentQueryBalance:
		return domain.QueryBalanceIntent{}, nil

	case domain.IntentAddWallet:
		var p addWalletPayload
		if err := json.Unmarshal(env.Content, &p); err != nil {
			return nil, fmt.Errorf("%w: add wallet content: %v", domain.ErrMalformedModelOutput, err)
		}

		return domain.AddWalletIntent{Name: p.Name, InitialBalance: p.InitialBalance}, nil

	case domain.IntentTransferWallet:
		var p transferWalletPayload
		if err := json.Unmarshal(env.Content, &p); err != nil {
			return nil, fmt.Errorf("%w: transfer content: %v", domain.ErrMalformedModelOutput, err)
		}

		return domain.TransferWalletIntent{
			SourceWallet: p.SourceWallet,
			TargetWallet: p.TargetWallet,
			Amount:       p.Nominal,
			Fee:          p.Fee,
		}, nil

	case domain.IntentRequestReport:
		var p reportPayload
		if err := json.Unmarshal(env.Content, &p); err != nil {
			return nil, fmt.Errorf("%w: report content: %v", domain.ErrMalformedModelOutput, err)
		}

		result := domain.RequestReportIntent{}
		if t, err := parseWireTime(p.DateRange.Start); err == nil {
			result.Start = t
		}
		if t, err := parseWireTime(p.DateRange.End); err == nil {
			result.End = t
		}
		for _, ft := range p.FlowType {
			flow := domain.FlowType(ft)
			if flow.IsValid() {
				result.FlowTypes = append(result.FlowTypes, flow)
			}
		}
		if p.Wallet != nil {
			result.Wallet = *p.Wallet
		}

		return result, nil

	case domain.IntentOther:
		var reply string
		if err := json.Unmarshal(env.Content, &reply); err != nil {
			// A non-string content still counts as an answer-less LAINNYA.
			return domain.OtherIntent{}, nil
		}

		return domain.OtherIntent{Reply: reply}, nil

	default:
		// An intent value outside the closed set degrades to LAINNYA.
		return domain.OtherIntent{}, nil
	}
}

package trace

import (
	"sort"

	"github.com/isa-tools/console/domain"
)

// GuardrailDefinition is the display metadata for one known guardrail id.
type GuardrailDefinition struct {
	Name        string
	Description string
}

// guardrailDefinitions is the fixed table of recognized guardrail ids.
// Keys not present here are dropped during extraction. The score and reason
// keys carry the overall verdict and are surfaced separately, not as checks.
var guardrailDefinitions = map[string]GuardrailDefinition{
	"allowed": {
		Name:        "Allowed",
		Description: "Indicates whether the message/action is allowed to proceed.",
	},
	"reason": {
		Name:        "Reason",
		Description: "Provides a reason for the decision, especially if not allowed.",
	},
	"score": {
		Name:        "Sales Manager Score",
		Description: "The sales manager score (0.0-1.0) evaluating the overall quality of the email response.",
	},
	"dsrCsatInclusion": {
		Name:        "DSR CSAT Inclusion",
		Description: "Does this DSR introduction email include a customer satisfaction survey request?",
	},
	"notRobotic": {
		Name:        "Not Robotic",
		Description: "Does the email sound natural and human-like, not robotic or artificial?",
	},
	"csatSurveyInclusion": {
		Name:        "CSAT Survey Inclusion",
		Description: "Does this response include a customer satisfaction survey request with a survey link?",
	},
	"isEnglish": {
		Name:        "Is English",
		Description: "Is this response written in English?",
	},
	"comprehensiveValue": {
		Name:        "Comprehensive Value",
		Description: "Does this email provide comprehensive, valuable information that is easy to scan?",
	},
	"dsrNoPricing": {
		Name:        "DSR No Pricing",
		Description: "Does this DSR introduction email avoid mentioning pricing or costs?",
	},
	"noSynchronousHumanInteraction": {
		Name:        "No Synchronous Human Interaction",
		Description: "Does the email avoid suggesting ISA schedule synchronous calls/demos/meetings?",
	},
	"isTwilioRelated": {
		Name:        "Is Twilio Related",
		Description: "Is this email about Twilio products, services, or helping with Twilio-related questions?",
	},
	"hasGreeting": {
		Name:        "Has Greeting",
		Description: "Does the email contain a greeting (e.g., Hi There, Hello [Name])?",
	},
	"isWellFormed": {
		Name:        "Is Well Formed",
		Description: "Is the email professionally formatted with proper HTML structure and readability?",
	},
	"linksRelevant": {
		Name:        "Links Relevant",
		Description: "Are the links in the email relevant to the conversation, or are there no links?",
	},
	"noIsaScheduling": {
		Name:        "No ISA Scheduling",
		Description: "Does the email avoid offering ISA to personally schedule calls/demos/meetings?",
	},
	"dsrIntro": {
		Name:        "DSR Introduction",
		Description: "Does this DSR introduction email start with a brief introduction of the colleague?",
	},
	"dsrNoResources": {
		Name:        "DSR No Resources",
		Description: "Does this DSR introduction email avoid sharing documentation links or partner info?",
	},
}

// GuardrailResult is the extracted verdict of the guardrail assistant.
type GuardrailResult struct {
	Checks []domain.GuardrailCheck `json:"checks"`
	Reason string                  `json:"reason"`
	Score  float64                 `json:"score"`
}

// ExtractGuardrails reads the last guardrail-assistant message in the window
// and extracts the overall score/reason plus every recognized boolean check
// from its structured output. No guardrail message yields an empty result.
func ExtractGuardrails(window []domain.ConversationMessage) GuardrailResult {
	result := GuardrailResult{Checks: []domain.GuardrailCheck{}}

	var last *domain.ConversationMessage
	for i := range window {
		if window[i].Role == domain.RoleAssistant && window[i].AssistantID == domain.GuardrailAssistantID {
			last = &window[i]
		}
	}
	if last == nil {
		return result
	}

	for _, part := range last.Parts {
		if part.Type != domain.PartStructuredOutput || part.Data == nil {
			continue
		}

		// The verdict payload is nested under data.data when present.
		// A present non-object value means a malformed verdict; nothing
		// is extracted from that part.
		output := part.Data
		if nested, ok := part.Data["data"]; ok && nested != nil {
			m, isMap := nested.(map[string]any)
			if !isMap {
				continue
			}
			output = m
		}

		if score, ok := output["score"].(float64); ok {
			result.Score = score
		}
		if reason, ok := output["reason"].(string); ok {
			result.Reason = reason
		}

		keys := make([]string, 0, len(output))
		for k := range output {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if key == "score" || key == "reason" {
				continue
			}
			def, known := guardrailDefinitions[key]
			if !known {
				continue
			}
			status, isBool := output[key].(bool)
			if !isBool {
				continue
			}
			result.Checks = append(result.Checks, domain.GuardrailCheck{
				ID:          key,
				Name:        def.Name,
				Description: def.Description,
				Status:      status,
			})
		}
	}

	return result
}

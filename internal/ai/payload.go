package ai

import (
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/sjson"
)

// The provider rejects requests missing any of these fields, most of which
// are browser-client state we never vary.
const chatPayloadTemplate = `{
  "messages": [{"id": "", "content": "", "role": ""}],
  "id": "",
  "previewToken": null,
  "userId": null,
  "codeModelMode": true,
  "agentMode": {},
  "trendingAgentMode": {},
  "isMicMode": false,
  "userSystemPrompt": null,
  "maxTokens": 1024,
  "playgroundTopP": null,
  "playgroundTemperature": null,
  "isChromeExt": false,
  "githubToken": "",
  "clickedAnswer2": false,
  "clickedAnswer3": false,
  "clickedForceWebSearch": false,
  "visitFromDelta": false,
  "isMemoryEnabled": false,
  "mobileClient": false,
  "userSelectedModel": null,
  "validated": "00f37b34-a166-4efb-bce5-1312d87f2f94",
  "imageGenerationMode": false,
  "webSearchModePrompt": false,
  "deepSearchMode": false,
  "domains": null,
  "vscodeClient": false,
  "codeInterpreterMode": false,
  "customProfile": {"name": "", "occupation": "", "traits": [], "additionalInfo": "", "enableNewChats": false},
  "session": null,
  "isPremium": false,
  "subscriptionCache": null,
  "beastMode": false,
  "reasoningMode": false,
  "designerMode": false,
  "workspaceId": "",
  "asyncMode": false,
  "isTaskPersistent": false,
  "selectedElement": null
}`

func buildChatPayload(prompt string, modes Modes) ([]byte, error) {
	chatID := uuid.NewString()

	fields := []struct {
		path  string
		value any
	}{
		{"messages.0.id", chatID},
		{"messages.0.content", prompt},
		{"messages.0.role", openai.ChatMessageRoleUser},
		{"id", chatID},
		{"imageGenerationMode", modes.ImageGeneration},
		{"webSearchModePrompt", modes.WebSearch},
		{"deepSearchMode", modes.DeepSearch},
		{"reasoningMode", modes.Reasoning},
	}

	out := []byte(chatPayloadTemplate)
	for _, f := range fields {
		var err error
		out, err = sjson.SetBytes(out, f.path, f.value)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

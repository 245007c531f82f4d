package openaicompat

import "time"

// DefaultTimeout is the default HTTP client timeout
const DefaultTimeout = 60 * time.Second

// Preset is the endpoint and default model of a known OpenAI-compatible vendor.
type Preset struct {
	BaseURL string
	Model   string
}

// Known vendors speaking the /chat/completions dialect.
var Presets = map[string]Preset{
	"groq": {
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "llama-3.3-70b-versatile",
	},
	"deepseek": {
		BaseURL: "https://api.deepseek.com/v1",
		Model:   "deepseek-chat",
	},
	"qwen": {
		BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		Model:   "qwen-plus",
	},
}

package domain

// Tool is a tool declared on an assistant config.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToolInstance wraps a tool binding on an assistant config.
type ToolInstance struct {
	Tool Tool `json:"tool"`
}

// KnowledgeSource is a knowledge source declared on an assistant config.
type KnowledgeSource struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// AssistantConfig is the static configuration of a named assistant.
type AssistantConfig struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Description      string            `json:"description,omitempty"`
	Role             string            `json:"role,omitempty"`
	Objective        string            `json:"objective,omitempty"`
	PromptSuffix     string            `json:"promptSuffix,omitempty"`
	ToolInstances    []ToolInstance    `json:"toolInstances,omitempty"`
	KnowledgeSources []KnowledgeSource `json:"knowledgeSources,omitempty"`
}

package propgen

import (
	"encoding/json"
	"fmt"
	"os"
)

// Prompts holds the system instructions used for model calls. Each field
// corresponds to one call type and can be overridden from a JSON file.
type Prompts struct {
	Review  string `json:"review"`
	Content string `json:"content"`
	OEM     string `json:"oem"`
}

// promptKeys are the keys accepted in a prompt overrides file.
var promptKeys = map[string]bool{
	"review":  true,
	"content": true,
	"oem":     true,
}

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() *Prompts {
	return &Prompts{
		Review: "You are a proposal analyst reviewing a Request for Proposal (RFP). " +
			"Analyze the RFP text and extract a concise summary of its main goals and scope, " +
			"the most critical client requirements, and the criteria that will be used to " +
			"evaluate proposals. Base everything strictly on the provided text; leave lists " +
			"empty when the RFP does not state them.",
		Content: "You are a senior technical writer and solution architect drafting the core " +
			"sections of a technical proposal. Use professional language with real technical " +
			"depth. Ground every claim in the RFP context provided. The architecture diagram " +
			"must be a valid mermaid script (graph TD, sequenceDiagram, or similar) that " +
			"matches the architecture description.",
		OEM: "You are a technical writer preparing a product overview section for a project " +
			"proposal. Describe what the product is, its main features, and its general " +
			"benefits. When RFP context is provided, briefly note how the product is relevant " +
			"to it.",
	}
}

// LoadPrompts reads prompt overrides from a JSON file and merges them over
// the defaults. The file must be a flat object; unknown keys and non-string
// values are rejected so typos fail loudly rather than silently keeping a
// default.
func LoadPrompts(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Errorf(ENOTFOUND, "prompts file not found at %q", path)
		}
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Errorf(EINVALID, "malformed prompts file %q: %v", path, err)
	}

	prompts := DefaultPrompts()
	for key, value := range raw {
		if !promptKeys[key] {
			return nil, Errorf(EINVALID, "unknown prompt key %q in %q", key, path)
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, Errorf(EINVALID, "prompt %q in %q must be a string", key, path)
		}
		if s == "" {
			return nil, Errorf(EINVALID, "prompt %q in %q is empty", key, path)
		}
		switch key {
		case "review":
			prompts.Review = s
		case "content":
			prompts.Content = s
		case "oem":
			prompts.OEM = s
		}
	}

	return prompts, nil
}

// String implements fmt.Stringer without leaking full prompt bodies into logs.
func (p *Prompts) String() string {
	return fmt.Sprintf("Prompts{review:%d content:%d oem:%d}", len(p.Review), len(p.Content), len(p.OEM))
}

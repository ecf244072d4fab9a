package copywriter

import "time"

// identifies which canned template a prompt resolved to
type Kind string

const (
	KindProduct   Kind = "product"
	KindBlog      Kind = "blog"
	KindMarketing Kind = "marketing"
	KindSocial    Kind = "social"
	KindEmail     Kind = "email"
	KindDefault   Kind = "default"
)

// open configuration bag accepted with a prompt; currently never consulted
type Options map[string]any

// produces template-selected marketing copy after a simulated delay
type Copywriter struct {
	delay time.Duration
	rules []rule
}

// maps a set of keywords to the template they select
type rule struct {
	keywords []string
	kind     Kind
}

// contains all inputs for copy generation
type GenerateRequest struct {
	Prompt  string
	Options Options
}

// contains the generated copy and the template that produced it
type GenerateResponse struct {
	Content  string
	Template Kind
}

// public description of an available template
type TemplateDescriptor struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

package templates

import "codeberg.org/justcopy/server/internal/copywriter"

// response payload for the template listing
type ListResponse struct {
	Templates []copywriter.TemplateDescriptor `json:"templates"`
}

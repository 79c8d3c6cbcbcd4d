package cli

const noteTemplate = `
=== Note ===

Title:      {{.Title}}
{{- if .ServerID}}
ID:         {{.ServerID}}
{{- else}}
ID:         {{.LocalID}} (not synced yet)
{{- end}}
Visibility: {{.Visibility}}
{{- if .Tags}}
Tags:       {{join .Tags ", "}}
{{- end}}
{{- if .OwnerEmail}}
Owner:      {{.OwnerEmail}}
{{- end}}
Updated:    {{.UpdatedAt}}
{{- if not .Synced}}
Sync:       pending
{{- end}}
{{- if .PublicLink}}
Public URL: {{.PublicLink.FullURL}}
{{- end}}
{{- if .Shares}}
Shared with:
{{- range .Shares}}
  - {{.SharedWithEmail}}
{{- end}}
{{- end}}

{{.ContentMd}}
`

const publicNoteTemplate = `
=== Public Note ===

Title:   {{.Title}}
{{- if .Tags}}
Tags:    {{join .Tags ", "}}
{{- end}}
Updated: {{.UpdatedAt}}

{{.ContentMd}}
`

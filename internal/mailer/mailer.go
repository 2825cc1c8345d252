package mailer

import "embed"

const (
	FromName                = "YVR Fountains"
	maxRetries              = 3
	ReviewSubmittedTemplate = "review_submitted.tmpl"
	AdminInvitationTemplate = "admin_invitation.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}

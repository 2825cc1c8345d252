package mailer

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every embedded template must parse and render all three named blocks
// with the data its caller actually passes; a typo in a template should
// fail here, not in production when the first review arrives.
func TestTemplates(t *testing.T) {
	tests := []struct {
		name         string
		templateFile string
		data         map[string]any
		wantSubject  string
		wantInBody   string
	}{
		{
			name:         "review submitted",
			templateFile: ReviewSubmittedTemplate,
			data: map[string]any{
				"FountainName": "Second Beach",
				"FountainID":   int64(12),
				"ReviewID":     int64(7),
				"Receipt":      "YVR-abc123xy",
				"Overall":      8,
				"ReviewerName": "Sam",
			},
			wantSubject: "New review pending moderation: Second Beach",
			wantInBody:  "YVR-abc123xy",
		},
		{
			name:         "admin invitation",
			templateFile: AdminInvitationTemplate,
			data: map[string]any{
				"Name":  "Robin",
				"Email": "robin@example.com",
			},
			wantSubject: "You have been added as a YVR Fountains administrator",
			wantInBody:  "robin@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.New("email").ParseFS(FS, "templates/"+tt.templateFile)
			require.NoError(t, err)

			subject := new(bytes.Buffer)
			require.NoError(t, tmpl.ExecuteTemplate(subject, "subject", tt.data))
			assert.Equal(t, tt.wantSubject, subject.String())

			plain := new(bytes.Buffer)
			require.NoError(t, tmpl.ExecuteTemplate(plain, "plainBody", tt.data))
			assert.Contains(t, plain.String(), tt.wantInBody)

			html := new(bytes.Buffer)
			require.NoError(t, tmpl.ExecuteTemplate(html, "htmlBody", tt.data))
			assert.Contains(t, html.String(), tt.wantInBody)
		})
	}
}

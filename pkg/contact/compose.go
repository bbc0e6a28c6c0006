package contact

import (
	"fmt"

	"github.com/sengiku/studio/pkg/sanitizer"
)

const bodyTemplate = `
      <div>
        <h2>New Contact Form Submission</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Subject:</strong> %s</p>
        <p><strong>Message:</strong></p>
        <p style="white-space: pre-wrap">%s</p>
      </div>
    `

// ComposeHTML renders the notification body. Values are interpolated verbatim
// unless strip is set, in which case markup is removed and text escaped first.
func ComposeHTML(m Message, strip bool) string {
	name, email, subject, message := m.Name, m.Email, m.Subject, m.Message
	if strip {
		sanitizer.StripAll(&name, &email, &subject, &message)
	}
	return fmt.Sprintf(bodyTemplate, name, email, subject, message)
}

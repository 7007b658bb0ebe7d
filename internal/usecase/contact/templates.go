package contact

import (
	"fmt"
	"html"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

func contactEmailTemplate(msg model.ContactMessage) (string, string, string) {
	subject := msg.Subject
	if subject == "" {
		subject = "New message from your portfolio"
	}
	subject = fmt.Sprintf("[Portfolio] %s", subject)

	text := fmt.Sprintf(`%s <%s> wrote on %s:

%s`, msg.Name, msg.Email, msg.ReceivedAt.Format("02 Jan 2006 15:04 MST"), msg.Message)

	body := fmt.Sprintf(`<p><strong>%s</strong> &lt;%s&gt; wrote on %s:</p>
<p>%s</p>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		msg.ReceivedAt.Format("02 Jan 2006 15:04 MST"),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))

	return subject, text, body
}

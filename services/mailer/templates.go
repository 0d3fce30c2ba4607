package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

var invitationTmpl = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #667eea; color: white; padding: 30px; text-align: center;">
      <h1>Welcome to Amonarq</h1>
    </div>
    <div style="background: #f9f9f9; padding: 30px;">
      <p>Hello,</p>
      <p>You've been invited to join the Amonarq Admin Panel. Click the button below to complete your registration and set up your account.</p>
      <p style="text-align: center;">
        <a href="{{.URL}}" style="display: inline-block; padding: 12px 30px; background: #667eea; color: white; text-decoration: none; border-radius: 5px;">Complete Registration</a>
      </p>
      <p>Or copy and paste this link into your browser:</p>
      <p style="word-break: break-all; color: #667eea;">{{.URL}}</p>
      <p><strong>Note:</strong> This invitation link will expire in 48 hours.</p>
      <p>If you didn't expect this invitation, you can safely ignore this email.</p>
    </div>
    <div style="text-align: center; margin-top: 20px; color: #666; font-size: 12px;">
      <p>&copy; {{.Year}} Amonarq. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background: #f9f9f9;">
    <div style="background: #667eea; color: white; padding: 20px; text-align: center;">
      <h2>New Contact Form Submission</h2>
    </div>
    <div style="background: white; padding: 30px; margin-top: 20px;">
      <div style="margin-bottom: 15px;"><strong style="color: #667eea;">From:</strong><div>{{.Name}}</div></div>
      <div style="margin-bottom: 15px;"><strong style="color: #667eea;">Email:</strong><div>{{.Email}}</div></div>
      <div style="margin-bottom: 15px;"><strong style="color: #667eea;">Subject:</strong><div>{{.Subject}}</div></div>
      <div style="margin-bottom: 15px;"><strong style="color: #667eea;">Message:</strong><div>{{.Message}}</div></div>
    </div>
  </div>
</body>
</html>`))

var replyTmpl = template.Must(template.New("reply").Parse(`<p>{{.Message}}</p>`))

var testTmpl = template.Must(template.New("test").Parse(`<h1>Email Configuration Test</h1>
<p>If you're reading this, the mail configuration is working correctly!</p>
<p>Sent at: {{.SentAt}}</p>`))

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func renderInvitation(frontendURL, token string) (string, error) {
	return render(invitationTmpl, map[string]any{
		"URL":  fmt.Sprintf("%s/invite/%s", frontendURL, token),
		"Year": time.Now().Year(),
	})
}

func renderContact(name, email, subject, message string) (string, error) {
	return render(contactTmpl, map[string]any{
		"Name": name, "Email": email, "Subject": subject, "Message": message,
	})
}

func renderReply(message string) (string, error) {
	return render(replyTmpl, map[string]any{"Message": message})
}

func renderTest() (string, error) {
	return render(testTmpl, map[string]any{"SentAt": time.Now().Format(time.RFC1123)})
}

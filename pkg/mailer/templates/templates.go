// Package templates renders the transactional emails Bellavista sends:
// the signup verification mail and the password reset mail.
package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

const verifyHTML = `<html>
<body style="font-family: sans-serif; color: #2b2b2b;">
  <h2>Welcome to Bellavista, {{.Name}}</h2>
  <p>Please confirm your email address to activate your account.</p>
  <p><a href="{{.Link}}" style="background:#1a73e8;color:#fff;padding:10px 18px;border-radius:4px;text-decoration:none;">Verify email</a></p>
  <p>The link expires in {{.ExpiresIn}}. If you did not sign up, ignore this message.</p>
</body>
</html>`

const verifyText = `Welcome to Bellavista, {{.Name}}

Please confirm your email address to activate your account:
{{.Link}}

The link expires in {{.ExpiresIn}}. If you did not sign up, ignore this message.`

const resetHTML = `<html>
<body style="font-family: sans-serif; color: #2b2b2b;">
  <h2>Password reset</h2>
  <p>Hello {{.Name}}, a password reset was requested for your Bellavista account.</p>
  <p><a href="{{.Link}}" style="background:#1a73e8;color:#fff;padding:10px 18px;border-radius:4px;text-decoration:none;">Reset password</a></p>
  <p>The link expires in {{.ExpiresIn}}. If you did not request this, ignore this message.</p>
</body>
</html>`

const resetText = `Password reset

Hello {{.Name}}, a password reset was requested for your Bellavista account:
{{.Link}}

The link expires in {{.ExpiresIn}}. If you did not request this, ignore this message.`

type mailTemplate struct {
	subject string
	html    *htmltpl.Template
	text    *texttpl.Template
}

var registry = map[string]mailTemplate{
	"verify_email": {
		subject: "Verify your email address",
		html:    htmltpl.Must(htmltpl.New("verify_email").Parse(verifyHTML)),
		text:    texttpl.Must(texttpl.New("verify_email").Parse(verifyText)),
	},
	"reset_password": {
		subject: "Reset your password",
		html:    htmltpl.Must(htmltpl.New("reset_password").Parse(resetHTML)),
		text:    texttpl.Must(texttpl.New("reset_password").Parse(resetText)),
	},
}

// Render produces subject, text body, and html body for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	t, ok := registry[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
	var tb, hb bytes.Buffer
	if err := t.text.Execute(&tb, data); err != nil {
		return "", "", "", err
	}
	if err := t.html.Execute(&hb, data); err != nil {
		return "", "", "", err
	}
	return t.subject, tb.String(), hb.String(), nil
}

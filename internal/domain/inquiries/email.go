package inquiries

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"cattery-storefront/internal/ports/notify"
)

const siteName = "Moonlit Elegance Kittens"

var textTmpl = texttemplate.Must(texttemplate.New("inquiry.txt").Parse(`New Kitten Inquiry from {{.Name}}

Name: {{.Name}}
Email: {{.Email}}
{{- if .Phone}}
Phone: {{.Phone}}{{end}}
{{- if .Breed}}
Breed Interest: {{.Breed}}{{end}}

Message:
{{.Message}}

---
This inquiry was submitted through the {{.Site}} website.
You can reply directly to this email to respond to {{.Name}}.
`))

// html/template escapa todo lo que viene del formulario.
var htmlTmpl = htmltemplate.Must(htmltemplate.New("inquiry.html").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #f8b4b4 0%, #f5a5a5 100%); padding: 20px; border-radius: 8px 8px 0 0; }
      .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
      .field { margin-bottom: 15px; }
      .label { font-weight: bold; color: #555; margin-bottom: 5px; display: block; }
      .message-box { background: white; padding: 15px; border-left: 4px solid #f8b4b4; margin-top: 10px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header"><h2 style="margin: 0; color: white;">New Kitten Inquiry</h2></div>
      <div class="content">
        <div class="field"><span class="label">Name:</span> {{.Name}}</div>
        <div class="field"><span class="label">Email:</span> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
        {{- if .Phone}}
        <div class="field"><span class="label">Phone:</span> <a href="tel:{{.Phone}}">{{.Phone}}</a></div>
        {{- end}}
        {{- if .Breed}}
        <div class="field"><span class="label">Breed Interest:</span> {{.Breed}}</div>
        {{- end}}
        <div class="field">
          <span class="label">Message:</span>
          <div class="message-box"><p style="margin: 0; white-space: pre-wrap;">{{.Message}}</p></div>
        </div>
        <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
        <p style="font-size: 12px; color: #888; margin: 0;">
          This inquiry was submitted through the {{.Site}} website.<br>
          You can reply directly to this email to respond to {{.Name}}.
        </p>
      </div>
    </div>
  </body>
</html>
`))

type emailData struct {
	SubmitInput
	Site string
}

// renderEmail arma el aviso al operador. ReplyTo es el interesado.
func renderEmail(to string, in SubmitInput) (notify.Message, error) {
	data := emailData{SubmitInput: in, Site: siteName}

	var txt strings.Builder
	if err := textTmpl.Execute(&txt, data); err != nil {
		return notify.Message{}, err
	}
	var html strings.Builder
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return notify.Message{}, err
	}

	return notify.Message{
		To:      to,
		ReplyTo: in.Email,
		Subject: "New Kitten Inquiry from " + in.Name,
		Text:    strings.TrimSpace(txt.String()),
		HTML:    html.String(),
	}, nil
}

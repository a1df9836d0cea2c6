// internal/mail/templates.go
//
// Inline email bodies.  Plain table-free HTML renders acceptably in
// every client; styling beyond that is out of scope here.
package mail

import "html/template"

var visitorTemplate = template.Must(template.New("visitor").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Thank you for reaching out, {{.Name}}!</h2>
    <p>I received your message and will get back to you as soon as I can.</p>
    <p>For your records, here is what you sent:</p>
    <blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">
      {{.Message}}
    </blockquote>
    <p>— Sent automatically by the portfolio contact form.</p>
  </body>
</html>`))

var ownerTemplate = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>New contact form submission</h2>
    <p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
    <p><strong>Received:</strong> {{.Timestamp}}</p>
    <p><strong>Message:</strong></p>
    <blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">
      {{.Message}}
    </blockquote>
  </body>
</html>`))

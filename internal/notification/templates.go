package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// IntroductionEmailData holds data for the introduction email templates.
type IntroductionEmailData struct {
	SiteName  string
	GroupName string
	City      string
	State     string
	// Recipient is the member the email is addressed to
	Recipient Recipient
	// Others are the rest of the group
	Others []Recipient
}

// BuildIntroductionEmail creates an introduction email with both HTML and text bodies.
func BuildIntroductionEmail(data IntroductionEmailData) (Email, error) {
	html, err := buildIntroductionHTML(data)
	if err != nil {
		return Email{}, err
	}
	return Email{
		To:       data.Recipient.Email,
		Subject:  fmt.Sprintf("Meet your %s: %s", data.SiteName, data.GroupName),
		TextBody: buildIntroductionText(data),
		HTMLBody: html,
	}, nil
}

// introductionData builds the per-recipient template data, excluding the recipient from Others
func introductionData(siteName string, intro Introduction, recipient Recipient) IntroductionEmailData {
	others := make([]Recipient, 0, len(intro.Recipients)-1)
	for _, r := range intro.Recipients {
		if r.MemberID != recipient.MemberID {
			others = append(others, r)
		}
	}
	return IntroductionEmailData{
		SiteName:  siteName,
		GroupName: intro.GroupName,
		City:      intro.Location.City,
		State:     intro.Location.State,
		Recipient: recipient,
		Others:    others,
	}
}

func buildIntroductionText(data IntroductionEmailData) string {
	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", firstNonEmpty(data.Recipient.Name, "there")))
	buf.WriteString(fmt.Sprintf("Welcome to %s, your new %s group in %s, %s.\n\n",
		data.GroupName, data.SiteName, data.City, data.State))
	buf.WriteString("Here are the other dads in your circle:\n\n")
	for _, r := range data.Others {
		buf.WriteString(fmt.Sprintf("- %s <%s>: %s\n", firstNonEmpty(r.Name, "A fellow dad"), r.Email, r.ChildSummary))
	}
	buf.WriteString("\nReply-all to say hello and pick a time to meet up.\n")
	return buf.String()
}

var introductionHTML = template.Must(template.New("introduction").Parse(introductionHTMLTemplate))

func buildIntroductionHTML(data IntroductionEmailData) (string, error) {
	var buf bytes.Buffer
	if err := introductionHTML.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render introduction email: %w", err)
	}
	return buf.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

const introductionHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.GroupName}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 520px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #1d4ed8;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151;">Hi {{if .Recipient.Name}}{{.Recipient.Name}}{{else}}there{{end}},</p>
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Welcome to <strong>{{.GroupName}}</strong>, your new group in {{.City}}, {{.State}}.
                Here are the other dads in your circle:
              </p>
              <ul style="margin: 0 0 24px; padding-left: 20px; font-size: 15px; color: #1f2937;">
                {{range .Others}}<li style="margin-bottom: 8px;"><strong>{{if .Name}}{{.Name}}{{else}}A fellow dad{{end}}</strong> &lt;{{.Email}}&gt;<br><span style="color: #6b7280;">{{.ChildSummary}}</span></li>
                {{end}}
              </ul>
              <p style="margin: 0; font-size: 14px; color: #6b7280;">Reply-all to say hello and pick a time to meet up.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

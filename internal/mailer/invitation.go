package mailer

import (
	"bytes"
	"html/template"
)

const InvitationSubject = "Interview Invitation - Travel and Tours Agency"

// Detail meeting virtual masih berupa placeholder tetap, mengikuti
// template undangan lama. Belum di-generate per interview.
const (
	DefaultMeetingLink = "https://us02web.zoom.us/j/82345678901?pwd=Q1JzR3h5bGZKT2pVY2t6bGhYb0tQdz09"
	DefaultMeetingID   = "823 4567 8901"
	DefaultPasscode    = "travel123"
)

type InvitationData struct {
	ApplicantName string
	InterviewDate string
	InterviewTime string
	InterviewType string
	JobTitle      string
	Address       string
	MeetingLink   string
	MeetingID     string
	Passcode      string
}

var invitationTmpl = template.Must(template.New("interview-invitation").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Interview Invitation</h2>
	<p>Dear {{.ApplicantName}},</p>
	<p>We are pleased to invite you to an interview for the position of <strong>{{.JobTitle}}</strong>.</p>
	<table cellpadding="4">
		<tr><td><strong>Date</strong></td><td>{{.InterviewDate}}</td></tr>
		{{if .InterviewTime}}<tr><td><strong>Time</strong></td><td>{{.InterviewTime}}</td></tr>{{end}}
		<tr><td><strong>Type</strong></td><td>{{.InterviewType}}</td></tr>
		{{if .Address}}<tr><td><strong>Location</strong></td><td>{{.Address}}</td></tr>{{end}}
	</table>
	{{if .MeetingLink}}
	<p>
		Join via Zoom: <a href="{{.MeetingLink}}">{{.MeetingLink}}</a><br>
		Meeting ID: {{.MeetingID}}<br>
		Passcode: {{.Passcode}}
	</p>
	{{end}}
	<p>We look forward to speaking with you.</p>
	<p>Best regards,<br>HR Recruitment Team</p>
</body>
</html>
`))

// BuildInvitation merakit email undangan interview untuk seorang applicant.
func BuildInvitation(to string, data InvitationData) (Message, error) {
	if data.MeetingLink == "" {
		data.MeetingLink = DefaultMeetingLink
		data.MeetingID = DefaultMeetingID
		data.Passcode = DefaultPasscode
	}

	var buf bytes.Buffer
	if err := invitationTmpl.Execute(&buf, data); err != nil {
		return Message{}, err
	}

	return Message{
		To:      to,
		Subject: InvitationSubject,
		HTML:    buf.String(),
	}, nil
}

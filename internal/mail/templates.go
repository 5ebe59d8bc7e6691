package mail

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const OTPSubject = "Password Reset OTP - Nyayasetu Legal Service"

// OTPBody renders the password-reset mail. The code is the only dynamic part.
func OTPBody(otp string, ttl time.Duration) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Password Reset</h2>
  <p>We received a request to reset the password for your Nyayasetu Legal Service account.
  Use the verification code below to proceed:</p>
  <p style="font-size: 32px; letter-spacing: 4px; font-family: monospace;"><b>%s</b></p>
  <p>This code expires in %d minutes. Never share it with anyone; our team will never ask for it.</p>
  <p>If you did not request a password reset, you can safely ignore this email.</p>
  <hr>
  <p><b>Nyayasetu Legal Service</b><br>Secure Legal Communication System</p>
</body>
</html>`, html.EscapeString(otp), int(ttl.Minutes()))
}

// CaseUpdateSubject is the fixed subject line for client case-update mail.
func CaseUpdateSubject(caseNumber string) string {
	return fmt.Sprintf("Case update for your case %s", caseNumber)
}

type CaseUpdateData struct {
	ClientName   string
	CaseNumber   string
	CaseTitle    string
	Points       []string
	LawyerName   string
	LawyerEmail  string
	LawyerMobile string
}

// CaseUpdateBody renders the update summary a lawyer sends to a client.
func CaseUpdateBody(d CaseUpdateData) string {
	var points strings.Builder
	for _, p := range d.Points {
		points.WriteString("<li>" + html.EscapeString(p) + "</li>\n")
	}

	mobile := d.LawyerMobile
	if mobile == "" {
		mobile = "Not provided"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Case Update</h2>
  <p>Dear %s,</p>
  <p><b>Case Number:</b> %s<br>
  <b>Case Title:</b> %s<br>
  <b>Date:</b> %s</p>
  <h4>Case Update Summary</h4>
  <ul>
%s  </ul>
  <h4>Lawyer Information</h4>
  <p>Name: %s<br>Email: %s<br>Mobile: %s</p>
  <hr>
  <p style="font-size: 12px;">This communication is confidential and may be legally privileged.
  If you are not the intended recipient, please notify the sender and delete this message.</p>
  <p><b>Nyayasetu Legal Service</b></p>
</body>
</html>`,
		html.EscapeString(d.ClientName),
		html.EscapeString(d.CaseNumber),
		html.EscapeString(d.CaseTitle),
		time.Now().Format("Monday, January 2, 2006"),
		points.String(),
		html.EscapeString(d.LawyerName),
		html.EscapeString(d.LawyerEmail),
		html.EscapeString(mobile),
	)
}

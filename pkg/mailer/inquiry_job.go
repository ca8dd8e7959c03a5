package mailer

// InquiryJob is the JSON payload put on the RabbitMQ queue when a user sends
// an inquiry about a listing. The worker renders and delivers it via Mailgun.
type InquiryJob struct {
	To            string `json:"to"` // listing owner's email
	PropertyID    string `json:"property_id"`
	PropertyTitle string `json:"property_title"`
	FromName      string `json:"from_name"`
	FromEmail     string `json:"from_email"`
	Message       string `json:"message"`
}

// Subject builds the email subject line for the job.
func (j InquiryJob) Subject() string {
	return "New inquiry about " + j.PropertyTitle
}

// Text builds the plain-text email body for the job.
func (j InquiryJob) Text() string {
	return j.FromName + " (" + j.FromEmail + ") asks about your listing \"" +
		j.PropertyTitle + "\":\n\n" + j.Message + "\n\nReply directly to this email to get in touch."
}

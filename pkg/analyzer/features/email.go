package features

var emailKeywords = []keywordEntry{
	{"Resend", []string{"resend"}},
	{"SendGrid", []string{"sendgrid"}},
	{"Mailgun", []string{"mailgun"}},
	{"Postmark", []string{"postmark"}},
	{"Nodemailer", []string{"nodemailer"}},
}

// DetectEmailProviders returns every email table entry with a matching
// dependency, in table order.
func DetectEmailProviders(deps map[string]string) []Provider {
	return detectProviders(emailKeywords, deps)
}

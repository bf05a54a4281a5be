package interfaces

// IMailer sends out-of-band notification email. Errors are for the
// caller's log line only; no core operation fails because mail did not
// go out.
type IMailer interface {
	Send(to, subject, body string) error
}

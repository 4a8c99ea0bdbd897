// Package mailer renders email views and hands the result to a transport
package mailer

type Attachment struct {
	Filename string
	Content  []byte
}

// Message is filled in by the build callback given to Mailer.Send
type Message struct {
	View        string
	ToAddress   string
	FromAddress string
	FromName    string
	SubjectText string
	HTML        string
	Attachments []Attachment
}

func (m *Message) To(addr string) *Message {
	m.ToAddress = addr
	return m
}

func (m *Message) From(addr, name string) *Message {
	m.FromAddress = addr
	m.FromName = name
	return m
}

func (m *Message) Subject(s string) *Message {
	m.SubjectText = s
	return m
}

// Attach adds content as an attachment shown to the recipient as filename
func (m *Message) Attach(filename string, content []byte) *Message {
	m.Attachments = append(m.Attachments, Attachment{Filename: filename, Content: content})
	return m
}

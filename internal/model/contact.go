package model

type ContactRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Details string `form:"details" json:"details"`
}

type MailDraft struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	URI       string `json:"uri"`
}

package domain

// Settings holds the user-editable preferences persisted alongside the
// records: where state-change notifications are sent and where mail
// exports are addressed. Loaded once at startup, edited via the
// settings form.
type Settings struct {
	WebhookURL          string `json:"webhookUrl,omitempty"`
	MailAddress         string `json:"mailAddress,omitempty"`
	DefaultBreakMinutes *int   `json:"defaultBreakTimeLengthMin,omitempty"`
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	c := s
	if s.DefaultBreakMinutes != nil {
		v := *s.DefaultBreakMinutes
		c.DefaultBreakMinutes = &v
	}
	return c
}

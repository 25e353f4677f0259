package mail

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// EMLComposer serializes drafts as RFC 5322 .eml files.
type EMLComposer struct{}

// Compose implements Composer.
func (EMLComposer) Compose(draft Draft, attachments []string, path string) error {
	m := gomail.NewMsg()
	if draft.From != "" {
		if err := m.From(draft.From); err != nil {
			return fmt.Errorf("invalid sender %q: %w", draft.From, err)
		}
	}
	if len(draft.To) > 0 {
		if err := m.To(draft.To...); err != nil {
			return fmt.Errorf("invalid recipients %v: %w", draft.To, err)
		}
	}
	m.Subject(draft.Subject)
	m.SetBodyString(gomail.TypeTextPlain, draft.Body)
	for _, p := range attachments {
		m.AttachFile(p)
	}
	if err := m.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package mail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pvflorin/RC-Generator/internal/render"
)

// WarnAttachmentMissing flags an attachment path that does not exist
// on disk at draft time. The draft is still created without it.
const WarnAttachmentMissing = "ATTACHMENT_MISSING"

// Warning is a recoverable drafting condition.
type Warning struct {
	Code    string
	Path    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s [%s]", w.Code, w.Message, w.Path)
}

// Draft is the message content before serialization.
type Draft struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// DraftStatus reports what the Drafter actually produced.
type DraftStatus struct {
	// Path is where the serialized draft was written.
	Path string

	// Attached lists the attachment paths included in the draft.
	Attached []string

	// Missing lists the requested paths that did not exist.
	Missing []string

	Warnings []Warning
}

// Composer serializes a draft plus attachments to a file.
type Composer interface {
	Compose(draft Draft, attachments []string, path string) error
}

// Drafter validates attachments and writes one draft file per call
// into its directory.
type Drafter struct {
	composer Composer
	dir      string
	clock    render.Clock
}

// NewDrafter creates a Drafter writing into dir. A nil composer falls
// back to the shipped EMLComposer; a nil clock to the system clock.
func NewDrafter(composer Composer, dir string, clock render.Clock) *Drafter {
	if composer == nil {
		composer = &EMLComposer{}
	}
	if clock == nil {
		clock = render.SystemClock{}
	}
	return &Drafter{composer: composer, dir: dir, clock: clock}
}

// Draft writes the message to a timestamped file in the Drafter's
// directory and returns its status. Requested attachments that do not
// exist are dropped with an ATTACHMENT_MISSING warning; only a
// serialization failure is an error.
func (d *Drafter) Draft(draft Draft, attachments []string) (*DraftStatus, error) {
	status := &DraftStatus{}
	for _, p := range attachments {
		if _, err := os.Stat(p); err != nil {
			status.Missing = append(status.Missing, p)
			status.Warnings = append(status.Warnings, Warning{
				Code:    WarnAttachmentMissing,
				Path:    p,
				Message: "attachment not found on disk; draft created without it",
			})
			continue
		}
		status.Attached = append(status.Attached, p)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create draft directory: %w", err)
	}

	stamp := d.clock.Now().Format("20060102-150405")
	path := uniquePath(filepath.Join(d.dir, fmt.Sprintf("Draft_%s.eml", stamp)))
	if err := d.composer.Compose(draft, status.Attached, path); err != nil {
		return nil, fmt.Errorf("compose draft: %w", err)
	}
	status.Path = path
	return status, nil
}

func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

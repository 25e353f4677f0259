package mail

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvflorin/RC-Generator/internal/testutil"
)

type captureComposer struct {
	draft       Draft
	attachments []string
	path        string
	err         error
}

func (c *captureComposer) Compose(draft Draft, attachments []string, path string) error {
	if c.err != nil {
		return c.err
	}
	c.draft = draft
	c.attachments = attachments
	c.path = path
	return os.WriteFile(path, []byte("draft"), 0o644)
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	return p
}

func TestDraft_AllAttachmentsPresent(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "rc.xlsx")
	b := touch(t, dir, "coc.xlsx")

	comp := &captureComposer{}
	d := NewDrafter(comp, filepath.Join(dir, "drafts"),
		testutil.NewSteppingClock(time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC), time.Second))

	status, err := d.Draft(Draft{Subject: "Documents INR000055", Body: "see attached"}, []string{a, b})
	require.NoError(t, err)

	assert.Equal(t, []string{a, b}, status.Attached)
	assert.Empty(t, status.Missing)
	assert.Empty(t, status.Warnings)
	assert.Equal(t, filepath.Join(dir, "drafts", "Draft_20260830-143000.eml"), status.Path)
	assert.Equal(t, "Documents INR000055", comp.draft.Subject)
}

func TestDraft_MissingAttachmentStillDrafts(t *testing.T) {
	dir := t.TempDir()
	present := touch(t, dir, "rc.xlsx")
	gone := filepath.Join(dir, "never-written.xlsx")

	comp := &captureComposer{}
	d := NewDrafter(comp, filepath.Join(dir, "drafts"), nil)

	status, err := d.Draft(Draft{Subject: "partial"}, []string{present, gone})
	require.NoError(t, err)

	assert.Equal(t, []string{present}, status.Attached)
	assert.Equal(t, []string{gone}, status.Missing)
	require.Len(t, status.Warnings, 1)
	assert.Equal(t, WarnAttachmentMissing, status.Warnings[0].Code)
	assert.Equal(t, gone, status.Warnings[0].Path)
	assert.FileExists(t, status.Path)
}

func TestDraft_SameSecondGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	comp := &captureComposer{}
	d := NewDrafter(comp, dir,
		testutil.NewSteppingClock(time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC), 0))

	first, err := d.Draft(Draft{Subject: "one"}, nil)
	require.NoError(t, err)
	second, err := d.Draft(Draft{Subject: "two"}, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.True(t, strings.HasSuffix(second.Path, "_2.eml"), "got %s", second.Path)
}

func TestEMLComposer_WritesDraftFile(t *testing.T) {
	dir := t.TempDir()
	attachment := touch(t, dir, "coc.xlsx")

	d := NewDrafter(EMLComposer{}, dir, nil)
	status, err := d.Draft(Draft{
		Subject: "Generated documents",
		Body:    "Documents for order INR000055 are attached.",
	}, []string{attachment})
	require.NoError(t, err)

	raw, err := os.ReadFile(status.Path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "Subject: Generated documents")
	assert.Contains(t, text, "coc.xlsx")
}

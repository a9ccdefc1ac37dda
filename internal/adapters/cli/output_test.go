package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputWithoutColors(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewOutputWithWriters(&out, &errOut, false)

	o.PrintHeader("gjallar build")
	o.PrintSuccess("%d entries bundled", 2)
	o.PrintWarning("public dir %s missing", "public")
	o.PrintError("bundle failed: %s", "landing")
	o.PrintFile("assets/landing.ABCDEFGH.js", 2048)

	assert.Equal(t, "gjallar build\n\n  ✓ 2 entries bundled\n  ⚠ public dir public missing\n    assets/landing.ABCDEFGH.js                       2.00 kB\n", out.String())
	assert.Equal(t, "  ✗ bundle failed: landing\n", errOut.String())
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{size: 12, want: "12 B"},
		{size: 1536, want: "1.50 kB"},
		{size: 3 * 1024 * 1024, want: "3.00 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSize(tt.size))
	}
}

func TestBuildReport(t *testing.T) {
	t.Run("success is minimal", func(t *testing.T) {
		var out, errOut bytes.Buffer
		r := NewBuildReport(NewOutputWithWriters(&out, &errOut, false), "/srv/app/dist")
		r.SetEntryCount(2)

		step := r.StartStep("Bundling entries")
		r.EndStep(step, true, "")
		r.Render()

		assert.False(t, r.HasFailures())
		assert.Contains(t, out.String(), "✓ 2 entries found")
		assert.Contains(t, out.String(), "Build complete in")
		assert.Contains(t, out.String(), "Output: /srv/app/dist")
		assert.Empty(t, errOut.String())
	})

	t.Run("errors go to stderr and are deduplicated", func(t *testing.T) {
		var out, errOut bytes.Buffer
		r := NewBuildReport(NewOutputWithWriters(&out, &errOut, false), "")
		r.SetEntryCount(1)

		step := r.StartStep("Bundling entries")
		r.EndStep(step, false, "bundle failed")
		r.AddError("landing", "Bundle failed", []string{"missing import", "missing import"})
		r.Render()

		assert.True(t, r.HasFailures())
		assert.Contains(t, errOut.String(), "Errors (1)")
		assert.Contains(t, errOut.String(), "missing import (2 occurrences)")
		assert.Contains(t, errOut.String(), "Build failed after")
		assert.NotContains(t, out.String(), "Build complete")
	})
}

package services

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postedLabelRe = regexp.MustCompile(`^(\d+) days? ago$`)

func TestGenerateProducesBoundedBatch(t *testing.T) {
	svc := NewMockJobsService()

	for i := 0; i < 50; i++ {
		jobs := svc.Generate("Acme")

		require.GreaterOrEqual(t, len(jobs), 3)
		require.LessOrEqual(t, len(jobs), 5)

		for n, job := range jobs {
			assert.Equal(t, fmt.Sprintf("job-%d", n+1), job.ID)
			assert.Contains(t, standardPositions, job.Title)
			assert.Contains(t, mockLocations, job.Location)
			assert.Contains(t, jobTypes, job.Type)
			assert.Equal(t, "Acme", job.Company)
			assert.Regexp(t, postedLabelRe, job.Posted)
		}
	}
}

func TestGenerateSlugsApplyURL(t *testing.T) {
	svc := NewMockJobsService()

	jobs := svc.Generate("Initech Global Services")
	for _, job := range jobs {
		assert.Contains(t, job.URL, "https://example.com/jobs/initech-global-services/")
		assert.NotContains(t, job.URL, " ")
	}
}

func TestGeneratePostedLabelSingular(t *testing.T) {
	svc := NewMockJobsService()

	// Sample until both singular and plural shapes have been seen, bounded
	// so a broken generator fails instead of spinning.
	sawPlural := false
	for i := 0; i < 2000 && !sawPlural; i++ {
		for _, job := range svc.Generate("Acme") {
			m := postedLabelRe.FindStringSubmatch(job.Posted)
			require.NotNil(t, m, "label %q", job.Posted)
			if m[1] == "1" {
				assert.Equal(t, "1 day ago", job.Posted)
			} else {
				sawPlural = true
			}
		}
	}
	assert.True(t, sawPlural)
}

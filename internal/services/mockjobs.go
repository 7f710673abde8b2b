package services

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/meghannnnnnn/Resumex/internal/models"
)

// Fixed catalogs the fallback postings are sampled from.
var (
	standardPositions = []string{
		"Software Engineer",
		"Data Analyst",
		"Product Manager",
		"UX Designer",
		"Marketing Specialist",
		"Frontend Developer",
		"Backend Developer",
		"Full Stack Developer",
		"DevOps Engineer",
		"QA Engineer",
	}

	mockLocations = []string{
		"Mumbai, India",
		"Bangalore, India",
		"Delhi, India",
		"Hyderabad, India",
		"Chennai, India",
		"Pune, India",
		"Ahmedabad, India",
		"Kolkata, India",
		"Remote (India)",
	}

	jobTypes = []string{"Full-time", "Part-time", "Contract", "Temporary", "Internship"}
)

// MockJobsService generates plausible placeholder postings when the live
// job-search API is down or has nothing for a company. The output is never
// presented as authoritative; it just keeps the expanded job card useful.
type MockJobsService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockJobsService() *MockJobsService {
	return &MockJobsService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns 3 to 5 synthetic postings for the company.
func (s *MockJobsService) Generate(company string) []models.LivePosting {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.rng.Intn(3) + 3

	jobs := make([]models.LivePosting, 0, count)
	for i := 0; i < count; i++ {
		position := standardPositions[s.rng.Intn(len(standardPositions))]
		jobs = append(jobs, models.LivePosting{
			ID:       fmt.Sprintf("job-%d", i+1),
			Title:    position,
			Company:  company,
			Location: mockLocations[s.rng.Intn(len(mockLocations))],
			Type:     jobTypes[s.rng.Intn(len(jobTypes))],
			URL:      fmt.Sprintf("https://example.com/jobs/%s/%s", slugify(company), slugify(position)),
			Posted:   s.randomPostedLabel(),
		})
	}
	return jobs
}

func (s *MockJobsService) randomPostedLabel() string {
	days := s.rng.Intn(30) + 1
	suffix := "s"
	if days == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%d day%s ago", days, suffix)
}

func slugify(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), "-")
}

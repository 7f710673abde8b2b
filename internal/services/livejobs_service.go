package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/meghannnnnnn/Resumex/internal/models"
)

const jsearchURL = "https://jsearch.p.rapidapi.com/search"

// jsearchResponse mirrors the slice of the JSearch payload we consume.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobID                  string `json:"job_id"`
	JobTitle               string `json:"job_title"`
	EmployerName           string `json:"employer_name"`
	JobCity                string `json:"job_city"`
	JobState               string `json:"job_state"`
	JobEmploymentType      string `json:"job_employment_type"`
	JobApplyLink           string `json:"job_apply_link"`
	JobGoogleLink          string `json:"job_google_link"`
	JobPostedAtDatetimeUTC string `json:"job_posted_at_datetime_utc"`
}

// LiveJobsService fetches current openings for a company from the JSearch
// API on rapidapi. Every failure path (no credential, transport error,
// non-200, empty results) falls back to synthetic postings, so FetchPostings
// always has something to show on an expanded job card.
type LiveJobsService struct {
	httpClient *http.Client
	mockJobs   *MockJobsService
	baseURL    string
	now        func() time.Time
}

func NewLiveJobsService(mockJobs *MockJobsService) *LiveJobsService {
	return &LiveJobsService{
		httpClient: http.DefaultClient,
		mockJobs:   mockJobs,
		baseURL:    jsearchURL,
		now:        time.Now,
	}
}

// FetchPostings returns live postings for the company, or synthetic ones
// when the API has nothing usable. An empty company name is the only error:
// that is a caller bug, not an upstream condition.
func (s *LiveJobsService) FetchPostings(ctx context.Context, company string) ([]models.LivePosting, error) {
	if company == "" {
		return nil, invalidRequest("Company parameter is required")
	}

	upstream, err := s.search(ctx, company)
	if err != nil {
		log.Printf("live-jobs: falling back to mock data for %q: %v", company, err)
		return s.mockJobs.Generate(company), nil
	}
	if len(upstream) == 0 {
		log.Printf("live-jobs: no results from API for %q, using fallback data", company)
		return s.mockJobs.Generate(company), nil
	}

	jobs := make([]models.LivePosting, 0, len(upstream))
	for _, j := range upstream {
		jobs = append(jobs, s.toPosting(company, j))
	}
	return jobs, nil
}

func (s *LiveJobsService) search(ctx context.Context, company string) ([]jsearchJob, error) {
	apiKey := os.Getenv("RAPID_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s jobs in India", company))
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("country", "IN")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", apiKey)
	req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: "job search request failed"}
	}

	var payload jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	// Results are already scoped by the query and country parameters;
	// no further regional filtering happens here.
	return payload.Data, nil
}

// toPosting maps one upstream record onto the card shape, substituting
// defaults for whatever JSearch left blank.
func (s *LiveJobsService) toPosting(company string, j jsearchJob) models.LivePosting {
	p := models.LivePosting{
		ID:       j.JobID,
		Title:    j.JobTitle,
		Company:  j.EmployerName,
		Location: "India",
		Type:     j.JobEmploymentType,
		URL:      j.JobApplyLink,
		Posted:   "Recently posted",
	}

	if p.ID == "" {
		p.ID = "job-" + uuid.NewString()
	}
	if p.Title == "" {
		p.Title = "Position Available"
	}
	if p.Company == "" {
		p.Company = company
	}
	if j.JobCity != "" {
		p.Location = j.JobCity
		if j.JobState != "" {
			p.Location += ", " + j.JobState
		}
	}
	if p.Type == "" {
		p.Type = "Not specified"
	}
	if p.URL == "" {
		p.URL = j.JobGoogleLink
	}
	if p.URL == "" {
		p.URL = "https://www.google.com/search?q=" + url.QueryEscape(fmt.Sprintf("%s jobs in India", company))
	}
	if j.JobPostedAtDatetimeUTC != "" {
		p.Posted = FormatPostedDate(j.JobPostedAtDatetimeUTC, s.now())
	}
	return p
}

// FormatPostedDate turns an upstream ISO timestamp into the relative label
// shown on the card. Day differences round up, so anything between one and
// two days old reads "Yesterday". Unparseable input reads "Recently posted".
func FormatPostedDate(dateString string, now time.Time) string {
	posted, err := time.Parse(time.RFC3339, dateString)
	if err != nil {
		return "Recently posted"
	}

	diff := now.Sub(posted)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

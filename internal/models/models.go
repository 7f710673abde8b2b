package models

// JobMatch is one AI-suggested position extracted from the resume.
// Lives only for the duration of a single request; nothing is persisted.
type JobMatch struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
}

// InterviewQA is one generated interview question with a sample answer.
type InterviewQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LivePosting is a job posting for a specific company, either fetched
// from the job-search API or synthesized as a fallback. Field names match
// what the frontend renders on an expanded job card.
type LivePosting struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Posted   string `json:"posted"`
}

package dtos

// GenerationRequest is the body of POST /gemini. Type is either "findJobs"
// or "generateQuestions". Field-level validation happens in the prompt
// builder so the error messages stay user-facing instead of gin's binding
// output.
type GenerationRequest struct {
	Type           string `json:"type"`
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

package services

import (
	"fmt"
)

// GenerationKind selects which prompt gets built for the resume.
type GenerationKind string

const (
	KindFindJobs          GenerationKind = "findJobs"
	KindGenerateQuestions GenerationKind = "generateQuestions"
)

const findJobsPrompt = `Based on the following resume, suggest 10 relevant job positions with job titles, brief descriptions, and required skills that match the candidate's profile. Format your response as JSON with an array of job objects, each with title, description, and requiredSkills properties. Resume: %s`

const generateQuestionsPrompt = `Based on the following resume and job description, generate 10 technical interview questions that are specifically relevant to assess this candidate for this role. For each question, also provide a sample answer. Format your response as JSON with an array of question objects, each with question and answer properties. Resume: %s Job Description: %s`

// BuildPrompt turns the request inputs into the instruction string sent to
// the generative model. All input validation happens here, before any
// external call is made.
func BuildPrompt(kind GenerationKind, resumeText, jobDescription string) (string, error) {
	if resumeText == "" {
		return "", invalidRequest("Resume text is required")
	}

	switch kind {
	case KindFindJobs:
		return fmt.Sprintf(findJobsPrompt, resumeText), nil
	case KindGenerateQuestions:
		if jobDescription == "" {
			return "", invalidRequest("Job description is required for generating interview questions")
		}
		return fmt.Sprintf(generateQuestionsPrompt, resumeText, jobDescription), nil
	default:
		return "", invalidRequest("Invalid request type")
	}
}

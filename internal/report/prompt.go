package report

const reviewerPrompt = `---

## Prompt
You are a senior code reviewer. Assess correctness, security, performance, and readability.
Flag risky patterns, missing tests, unclear names, and potential regressions, give categories for e.g Critical, High, Medium, Low and give order of the issues.
Suggest concrete fixes and test cases, also give categories for e.g Critical, High, Medium, Low and give order of the tests.
Give a score for e.g 1-10 for the overall quality of the code.
Give a summary of the changes in a few sentences.
Lastly suggest a few features that could be added to the code or the project.
`

// ReviewerPrompt returns the fixed reviewer-instructions block appended to
// reports unless suppressed.
func ReviewerPrompt() string {
	return reviewerPrompt
}

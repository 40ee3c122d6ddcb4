package interview

import (
	"fmt"
	"strings"
)

func systemPrompt(role, company, resumeText string) string {
	var b strings.Builder
	b.WriteString("You are an experienced interviewer running a behavioral interview. ")
	b.WriteString("Ask one question at a time, follow up on vague answers and encourage the STAR format ")
	b.WriteString("(Situation, Task, Action, Result). Keep replies short and conversational.\n")
	if role != "" {
		fmt.Fprintf(&b, "The candidate is interviewing for the role of %s.\n", role)
	}
	if company != "" {
		fmt.Fprintf(&b, "The target company is %s; tailor questions to its culture and values.\n", company)
	}
	if resumeText != "" {
		b.WriteString("Use the candidate's resume below to ask about their real experience.\n")
		b.WriteString("<resume>\n")
		b.WriteString(resumeText)
		b.WriteString("\n</resume>\n")
	}
	fmt.Fprintf(&b, "After about five questions, give brief overall feedback and end your final message with %s. ", CompletionMarker)
	b.WriteString("Never use that marker before the interview is over.")
	return b.String()
}

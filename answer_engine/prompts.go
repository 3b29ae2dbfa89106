package answer_engine

import (
	"fmt"
	"strings"

	"interview-copilot/intent"
	"interview-copilot/projects"
)

// promptBuilders maps each simple intent to its instruction payload. The
// behavioral intents need a project record and are dispatched separately.
var promptBuilders = map[intent.Intent]func(question string) string{
	intent.Intro: func(q string) string {
		return "Question: " + q + "\n" +
			"Answer as a short professional self-introduction: 4-5 bullets.\n" +
			"Format: **ShortTitle:** description.\n" +
			"- Current role & years.\n" +
			"- Core tech stack.\n" +
			"- Education.\n" +
			"- Value you bring.\n"
	},
	intent.Education: func(q string) string {
		return "Question: " + q + "\n" +
			"Focus on education in 3-4 bullets.\n" +
			"Format: **ShortTitle:** description.\n" +
			"- Degrees.\n" +
			"- Key subjects.\n" +
			"- Certifications.\n"
	},
	intent.Experience: func(q string) string {
		return "Question: " + q + "\n" +
			"Summarise your experience in 3-5 bullets.\n" +
			"Format: **ShortTitle:** description.\n"
	},
	intent.Strengths: func(q string) string {
		return "Question: " + q + "\n" +
			"List 3-5 strengths.\n" +
			"Format: **StrengthName:** how it helps the role.\n"
	},
	intent.Weaknesses: func(q string) string {
		return "Question: " + q + "\n" +
			"List real but safe development areas.\n" +
			"Format: **WeaknessName:** what you're doing to improve it.\n"
	},
	intent.WhyCompany: func(q string) string {
		return "Question: " + q + "\n" +
			"Answer why you applied for this role and why you want to work at this company.\n" +
			"Use the job description context above for alignment, but do NOT copy sentences.\n" +
			"Format: **Stage:** explanation.\n" +
			"- 1 bullet: what attracts you to the company/domain or team (based on JD).\n" +
			"- 2 bullets: how your past work matches what they need.\n" +
			"- 1 bullet: what value you will bring (impact, reliability, scalability, cost, etc.).\n" +
			"- 1 bullet: what you want to learn or grow into in this role.\n" +
			"Keep it specific to this company/role, not generic boilerplate."
	},
	intent.LLMBasics: func(q string) string {
		return "Question: " + q + "\n" +
			"Explain what a Large Language Model (LLM) is.\n" +
			"Give 3-5 bullets.\n" +
			"Format: **Stage:** description.\n" +
			"- 1 bullet: simple definition.\n" +
			"- 1 bullet: how transformers/attention work (high-level).\n" +
			"- 1 bullet: why LLMs are useful for automation / NLP.\n" +
			"- 1 bullet: tie to MLOps or deployment if relevant.\n"
	},
	intent.MLPipeline: func(q string) string {
		return "Question: " + q + "\n" +
			"Explain an end-to-end ML pipeline in 3-6 clear bullets.\n" +
			"Structure should cover:\n" +
			"Format: **KeyPoint:** description.\n" +
			"- Data ingestion + preprocessing.\n" +
			"- Feature engineering.\n" +
			"- Model training + evaluation.\n" +
			"- CI/CD for ML (model versioning, deployment, testing).\n" +
			"- Monitoring + retraining strategy.\n" +
			"Use concrete tooling examples ONLY if consistent with my resume."
	},
	intent.Generic: func(q string) string {
		return "Question: " + q + "\n" +
			"Format: **KeyPoint:** description.\n" +
			"Answer this question directly in 3-5 short bullet points.\n" +
			"- Focus only on what the question is actually asking.\n" +
			"- Do NOT just list generic responsibilities or buzzwords.\n" +
			"- Use concrete examples from your experience only if they clearly fit the question.\n" +
			"- If the question is vague, give a reasonable, honest interpretation."
	},
}

func buildProjectAnswerPrompt(question string, p *projects.Record) string {
	return fmt.Sprintf(`You are helping me answer a behavioral interview question in first person.

Question:
%s

Use exactly this project from my experience and do NOT switch to any other:
- Project name: %s
- Role: %s
- Company: %s
- Project summary: %s
- Project impact: %s

Instructions:
- Build the answer internally using STAR structure (Situation, Task, Action, Result),
  but DO NOT write the words "Situation", "Task", "Action", or "Result" anywhere.
- Use 4-6 clean bullet points.
- Each bullet should be a single, clear, spoken-interview-friendly sentence.
- No headings, no labels, no bold markers.
- Do NOT restate the question.
- Do NOT invent any timeline, year, or date.
- Do NOT invent details not in the project description.`,
		question, p.Name, p.Role, p.Company, p.ShortSummary, p.ImpactSummary)
}

func buildBehavioralFollowupPrompt(question string, p *projects.Record, previousBullets []string) string {
	prev := ""
	for _, b := range previousBullets {
		prev += "- " + b + "\n"
	}

	return fmt.Sprintf(`You are answering a FOLLOW-UP behavioral interview question in first person.

Follow-up question:
%s

This follow-up refers to the SAME incident described earlier. Do NOT change the story.

Previous answer:
%s
Project context:
- Project name: %s
- Role: %s
- Company: %s

Instructions:
- Answer ONLY what the follow-up is asking (no re-explaining the whole project).
- Use 2-4 sharp, direct bullet points.
- DO NOT introduce new problems, new incidents, or new timelines.
- DO NOT restate the question.
- DO NOT use the words "Situation", "Task", "Action", or "Result".
- DO NOT invent years or dates.`,
		question, prev, p.Name, p.Role, p.Company)
}

func buildGeneralSystemPrompt(role, resume string) string {
	return fmt.Sprintf(`You are helping me in a live %s interview.
Answer ONLY in 3-6 sharp bullet points.
Answer in first person, as me.

Use ONLY information that is consistent with the resume below.
If something is not clearly supported by it, stay generic
instead of inventing tools, services or companies.

ROLE:
%s

RESUME:
%s

Rules:
- Do NOT restate the question.
- Do NOT invent random tech I haven't actually used.
- For 'tell me about yourself' / 'what have you studied' questions,
  include education and key experience.
- Keep bullets short (ideally 12-20 words).`, role, role, resume)
}

func buildJDSystemPrompt(role, resume, jd string) string {
	return fmt.Sprintf(`You are helping me in a live %s interview.
Answer ONLY in 3-6 sharp bullet points.
Answer in first person, as me.

Use ONLY information that is consistent with the resume and job description below.
If something is not clearly supported by them, stay generic
instead of inventing tools, services or companies.

ROLE:
%s

RESUME:
%s

JOB DESCRIPTION:
%s

Rules:
- Do NOT restate the question.
- Do NOT invent random tech I haven't actually used.
- You MAY refer to the company's domain, products, or responsibilities
  only when explaining why I am a good fit for THIS ROLE or why I want
  to work at THIS COMPANY.
- Keep bullets short (ideally 12-20 words).`, role, role, resume, jd)
}

// ParseBullets keeps only lines starting with a bullet marker. A response
// with no markers becomes a single bullet holding the whole trimmed text.
func ParseBullets(text string) []string {
	var bullets []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			b := strings.TrimSpace(strings.TrimLeft(line, "-•* "))
			if b != "" {
				bullets = append(bullets, b)
			}
		}
	}

	if len(bullets) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed != "" {
			bullets = []string{trimmed}
		}
	}

	return bullets
}

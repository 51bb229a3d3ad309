package interview

// fallbackBank is the static question bank used whenever the backend cannot
// produce a question. Keyed by category; unknown categories fall back to the
// general bank.
var fallbackBank = map[Category][]string{
	CategoryBehavioral: {
		"Tell me about a time when you had to work with a difficult team member.",
		"Describe a situation where you had to meet a tight deadline.",
		"Give me an example of when you had to learn something new quickly.",
		"Tell me about a time you failed and what you learned from it.",
		"Describe a situation where you had to give difficult feedback.",
		"Tell me about a time you had to adapt to a major change at work.",
		"Give me an example of when you went above and beyond for a project.",
		"Describe a time when you had to resolve a conflict between team members.",
	},
	CategoryTechnical: {
		"Walk me through your approach to debugging a complex issue.",
		"How do you stay updated with the latest technologies in your field?",
		"Describe a technical challenge you solved recently.",
		"What's your process for code review and quality assurance?",
		"How do you approach performance optimization?",
		"Tell me about a time you had to learn a new technology quickly.",
		"Describe your experience with version control and collaboration tools.",
		"How do you handle technical debt in your projects?",
	},
	CategoryGeneral: {
		"What motivates you in your career?",
		"Where do you see yourself in 5 years?",
		"What's your greatest professional achievement?",
		"How do you handle stress and pressure?",
		"What are your career goals?",
		"How do you prioritize your work?",
		"What's the most important thing you've learned recently?",
		"How do you approach continuous learning?",
	},
	CategoryCaseStudy: {
		"How would you approach designing a scalable system?",
		"Walk me through how you would optimize a slow-performing application.",
		"How would you handle a situation where requirements change mid-project?",
		"Describe your approach to data migration between systems.",
		"How would you design a user authentication system?",
		"What's your strategy for handling system downtime?",
		"How would you approach testing a complex integration?",
		"Describe how you would implement a new feature with minimal risk.",
	},
	CategoryLeadership: {
		"Tell me about a time you had to motivate an underperforming team member.",
		"How do you delegate work across a team with mixed experience levels?",
		"Describe a difficult decision you made that was unpopular with your team.",
		"How do you handle disagreements between senior engineers?",
		"Tell me about a time you had to deliver bad news to stakeholders.",
		"How do you balance hands-on work with leading others?",
		"Describe how you develop and mentor people on your team.",
		"What's your approach to setting goals and measuring team success?",
	},
}

// bankQuestions returns the fallback questions for a category.
func bankQuestions(category Category) []string {
	if questions, ok := fallbackBank[category]; ok {
		return questions
	}
	return fallbackBank[CategoryGeneral]
}

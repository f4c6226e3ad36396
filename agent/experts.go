package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert the user actually talks to. It
// holds no domain knowledge of its own; it plans questions for the
// other experts and assembles their answers.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you; they keep context of your previous questions.

			The user is a researcher managing grants. They are here primarily to understand their
			grant accounts: what each project has spent, what remains, and how spending moved
			between two report runs. Assume they mean the AggieEnterprise reports sitting in the
			current directory; ask the Accountant first to see what reports exist.

			Devise a plan of questions for the experts and come up with the best response to the
			user's request. Prefer concrete figures from the Accountant over generalities.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the search-grounded expert for everything that
// lives outside the report files: funding agencies, solicitations,
// policy changes.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert on research funding:
		agencies (NSF, NIH, DOE, ...), grant programs and solicitations,
		deadlines and policy news.
		Ask the Researcher whenever you need recent or grounding information
		from outside the user's own reports.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on research funding. You can search and find anything related to
			funding agencies, grant programs, solicitations and their deadlines, and research
			policy. You leverage Google Search to ground your assertions in solid truth, and you
			know how to relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAccountant creates the expert that reads the user's grant
// reports through the function library in functions.go.
func NewAccountant() *Expert {
	lib := []Function{Reports, Totals, Differences}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. It reads the AggieEnterprise grant reports in the
		user's working directory and computes the relevant figures: per-project totals for any
		report run, and how the figures changed between two runs.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's grant reports. You know how to use
				the Tools to extract information from the report files:
				  - which report files exist and when each was generated
				  - per-project totals (budget, expenses, balance, expense categories) for one report
				  - per-project differences between two reports
				You are part of a team of experts; yours is everything inside the report files.
				They might ask you questions in approximate language; figure out what they meant.
				Project names in your tables are the cleaned names the user knows their grants by.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

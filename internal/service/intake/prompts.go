package intake

import "fmt"

const extractionSystemPrompt = "You are a precise project planner."

// buildExtractionPrompt 构造自由文本字段抽取提示词
func buildExtractionPrompt(text string) string {
	return fmt.Sprintf(`
You are a software project planner. Extract the following fields from the project description below and respond ONLY with valid JSON matching the structure exactly:

- projectName (string)
- projectDescription (string)
- stakeholder (string)
- category (string)
- startDate (string, e.g. "2023-01-01")
- expectedDuration (string, e.g. "4")
- durationUnit (string, e.g. "weeks")
- teamSize (string, e.g. "5")
- budget (string)
- experience (string)
- locationType (string)
- frontend (list of strings)
- backend (list of strings)
- database (list of strings)
- cloud (list of strings)
- devops (list of strings)
- design (list of strings)
- otherTech (optional string, or empty string if none)

Project description:

"""%s"""
`, text)
}

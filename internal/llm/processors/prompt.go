package processors

import "fmt"

// SystemInstruction is the system message sent with every structuring request.
const SystemInstruction = "You are an expert CV parser that outputs only valid JSON."

// BuildCVParserPrompt creates the single-turn prompt asking the model to
// extract every section present in the CV text, not a predefined list, and to
// answer with nothing but JSON.
func BuildCVParserPrompt(cvText string) string {
	return fmt.Sprintf(`You are an expert CV parser. Extract ALL important information from the following CV text.
Analyze the CV thoroughly and identify ALL relevant sections and details.

Return a RFC8259 compliant JSON object that captures the complete structure of the CV.
Do not limit yourself to predefined sections - extract whatever sections and information are present in the CV.

Common sections might include (but are not limited to):
- Personal information (name, contact details)
- Summary or objective
- Work experience
- Education
- Skills or competencies
- Projects
- Publications
- Certifications
- Languages
- Volunteer work
- Awards and honors
- References
- Additional sections specific to this CV

For each section, capture all relevant details in a structured format.
Ensure your response is ONLY valid JSON with no additional text or explanation.

CV Text:
%s`, cvText)
}

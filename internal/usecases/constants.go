package usecases

// defaultToneInstruction is the fallback for unrecognized tone values
const defaultToneInstruction = "Use a clear, professional tone."

// toneInstructions maps the tone selector to the instruction prefixed onto the
// generation prompt
var toneInstructions = map[string]string{
	"formal":       "Use a professional and formal tone, suitable for academic admissions.",
	"motivational": "Adopt a highly motivational and uplifting style, emphasizing determination and positive energy.",
	"academic":     "Use precise, academic language, focusing on research interests and intellectual curiosity.",
	"humanlike": "Write in a way that sounds genuinely human, personal, and authentic. " +
		"Use natural phrasing, occasional imperfections, and avoid patterns typical of AI writing. " +
		"The text should feel warm, honest, and non-generic. Avoid repetitive structures and generic filler. " +
		"If possible, add subtle touches of personality or small anecdotes.",
}

func toneInstruction(tone string) string {
	if instruction, ok := toneInstructions[tone]; ok {
		return instruction
	}
	return defaultToneInstruction
}

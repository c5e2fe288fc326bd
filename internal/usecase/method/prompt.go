package method

import "fmt"

const promptTemplate = `You are an elite AI researcher writing the **"Proposed Method"** section for a top-tier conference paper (e.g., CVPR, NeurIPS).

**GOAL:** Analyze the attached architecture diagrams and write a **cohesive, logically flowing** description of the proposed framework.

**INSTRUCTIONS:**
1. **Narrative Flow:** Do NOT force the text into too many sub-sections. Prioritize a smooth narrative.
2. **Synthesis:** Synthesize multiple images into a single coherent explanation.
3. **Academic Tone:** Use high-level academic English and **LaTeX** for variables ($x$, $L_{total}$).
4. **Detail:** Describe exactly what happens in the pipeline, transitioning naturally between components.

[Context Info]
- **Domain:** %s
- **Visual Input:** %d diagram(s).

Start writing the "Proposed Method" section now.`

// BuildPrompt interpolates the instruction template with the literal domain
// text and the diagram count. The domain text may be empty.
func BuildPrompt(domain string, imageCount int) string {
	return fmt.Sprintf(promptTemplate, domain, imageCount)
}

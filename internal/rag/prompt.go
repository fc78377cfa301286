package rag

import "strings"

// answerPrompt constrains the model to the retrieved context. The
// wording matters: the refusal sentence is what keeps the assistant
// from improvising outside the ingested guidelines.
const answerPrompt = `You are a specialized Pregnancy Health Assistant using WHO and antenatal guidelines.

Strictly follow these rules:
1. Answer the question based ONLY on the following context.
2. If the answer is not in the context, say "I cannot find this information in the provided guidelines."
3. Do not make up information or use outside knowledge.
4. Keep answers concise and clinical but empathetic.

Context:
{context}

Question:
{question}

Answer:
`

// buildPrompt fills the fixed template with the retrieved chunk texts
// and the raw question.
func buildPrompt(contextChunks []string, question string) string {
	prompt := strings.Replace(answerPrompt, "{context}", strings.Join(contextChunks, "\n\n"), 1)
	return strings.Replace(prompt, "{question}", question, 1)
}

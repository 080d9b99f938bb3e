package dto

import "strings"

// Refinement keeps the model on the shop's own services.
const Refinement = ` Please respond only to questions or topics related to professional pet grooming, ` +
	`luxury pet hotels, and virtual veterinary services. For any other topic, politely decline to answer ` +
	`and redirect the conversation to these specific pet services. Among pet grooming services, we offer ` +
	`only basic grooming, full grooming and spa packages. If virtual veterinary services are mentioned by ` +
	`the user, then always mention Mr. John Doe and his expertise. Keep the response as concise as possible.`

type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// Refined returns the prompt as it is sent to the model.
func (p PromptRequest) Refined() string {
	return strings.TrimSpace(p.Prompt) + Refinement
}

type PromptResponse struct {
	Response string `json:"response"`
}

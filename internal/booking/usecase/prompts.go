package usecase

import "fmt"

const intentPromptTemplate = `You are a professional appointment booking assistant. Analyze the user's message and extract booking information.

The current date and time is %s.

User message: %q

Extract the following information and respond ONLY with a valid JSON object:
- intent: one of [book_appointment, check_availability, confirm_booking, general_inquiry]
- details: object containing:
  - date: date in YYYY-MM-DD format if mentioned (null if not specified)
  - time: time in HH:MM 24-hour format if mentioned (null if not specified)
  - duration: duration in minutes (default 60 if not specified)
  - title: purpose/title of meeting (default "Meeting" if not specified)
  - needs_clarification: array of missing information needed

Examples:
- "Book a meeting tomorrow at 2 PM" -> {"intent": "book_appointment", "details": {"date": "2024-01-02", "time": "14:00", "duration": 60, "title": "Meeting", "needs_clarification": []}}
- "Do you have time Friday?" -> {"intent": "check_availability", "details": {"date": null, "time": null, "duration": 60, "title": "Meeting", "needs_clarification": ["specific_date", "preferred_time"]}}

JSON Response:`

const respondPromptTemplate = `You are a friendly, professional appointment booking assistant. Generate a natural response based on this context.

Context: %s

User input: %q

Guidelines:
- Be conversational and helpful
- If showing available slots, present them clearly with times
- If booking is confirmed, be enthusiastic and provide details
- If information is missing, ask specific questions
- Keep responses concise but complete
- Use a friendly, professional tone

Response:`

func buildIntentPrompt(message, nowStr string) string {
	return fmt.Sprintf(intentPromptTemplate, nowStr, message)
}

func buildRespondPrompt(contextJSON, message string) string {
	return fmt.Sprintf(respondPromptTemplate, contextJSON, message)
}

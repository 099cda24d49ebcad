package booking

// Intent values produced by the extractor.
const (
	IntentBookAppointment   = "book_appointment"
	IntentCheckAvailability = "check_availability"
	IntentConfirmBooking    = "confirm_booking"
	IntentGeneralInquiry    = "general_inquiry"
)

// DefaultTitle is used when the user never names the appointment.
const DefaultTitle = "Meeting"

// Canned replies used when the LLM cannot produce one.
const (
	GreetingReply = "Hi! I'm your appointment booking assistant. I can help you schedule meetings, check availability, and manage your calendar. What would you like to schedule?"

	ApologeticReply = "I apologize, but I encountered an issue processing your request. Could you please try rephrasing that?"

	PromptForDetailsReply = "I'm here to help you book appointments. What would you like to schedule?"
)

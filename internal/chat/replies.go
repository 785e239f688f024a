package chat

// Greeting opens every conversation
const Greeting = "Hello! I'm your health assistant. How can I help you today? You can ask me about symptoms, medications, or general health advice."

// DefaultFallbackReply is sent when no reply matches
const DefaultFallbackReply = "I understand you're asking about health concerns. While I can provide general information, I recommend consulting with a healthcare professional for personalized advice. Is there a specific symptom you'd like to know more about?"

// DefaultReplies returns the canned replies in priority order
func DefaultReplies() []Reply {
	return []Reply{
		{
			Keywords: []string{"fever"},
			Text: "For fever, I recommend:\n" +
				"• Rest and stay hydrated\n" +
				"• Take paracetamol if needed\n" +
				"• Monitor your temperature\n" +
				"• See a doctor if fever persists over 3 days or goes above 102°F",
		},
		{
			Keywords: []string{"headache"},
			Text: "For headaches, try:\n" +
				"• Drink plenty of water\n" +
				"• Rest in a quiet, dark room\n" +
				"• Apply a cold or warm compress\n" +
				"• Consider over-the-counter pain relievers\n" +
				"• If severe or persistent, consult a doctor",
		},
		{
			Keywords: []string{"cough"},
			Text: "For cough relief:\n" +
				"• Stay hydrated with warm liquids\n" +
				"• Try honey and warm water\n" +
				"• Use a humidifier\n" +
				"• Avoid irritants like smoke\n" +
				"• See a doctor if cough persists over 2 weeks",
		},
		{
			Keywords: []string{"stomach", "nausea"},
			Text: "For stomach issues:\n" +
				"• Eat bland foods (BRAT diet)\n" +
				"• Stay hydrated with small sips\n" +
				"• Avoid dairy and fatty foods\n" +
				"• Try ginger tea\n" +
				"• Rest and avoid solid foods initially",
		},
		{
			Keywords: []string{"medicine", "medication"},
			Text:     "Always consult with a healthcare professional before taking any medication. I can provide general information, but proper medical advice should come from qualified doctors or pharmacists.",
		},
		{
			Keywords: []string{"emergency", "urgent"},
			Text:     "⚠️ For medical emergencies, please call emergency services immediately (911 in the US). Don't rely on this chat for urgent medical situations.",
		},
		{
			Keywords: []string{"hello", "hi"},
			Text:     "Hello! How are you feeling today? I'm here to help with general health questions and guidance.",
		},
		{
			Keywords: []string{"thanks", "thank you"},
			Text:     "You're welcome! Remember, this is general information only. For personalized medical advice, please consult with healthcare professionals. Stay healthy! 🌟",
		},
	}
}

// QuickQuestions are offered before the user has said anything
func QuickQuestions() []string {
	return []string{
		"What should I do for a fever?",
		"How to treat a headache?",
		"Natural remedies for cough",
		"When to see a doctor?",
	}
}

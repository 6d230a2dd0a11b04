package services

import "strings"

// The kiosk chatbot is a fixed rule table, not a model call: first rule
// whose keyword appears in the lowercased message wins.
type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{
		keywords: []string{"fever", "temperature"},
		reply:    "I understand you're experiencing fever. Please monitor your temperature regularly. If it persists above 100°F for more than 24 hours, consider consulting a doctor. Stay hydrated and get plenty of rest.",
	},
	{
		keywords: []string{"headache", "head pain"},
		reply:    "Headaches can have various causes. Try to rest in a quiet, dark room and stay hydrated. If headaches are frequent or severe, please consult with a doctor for proper evaluation.",
	},
	{
		keywords: []string{"diabetes", "sugar"},
		reply:    "For diabetes management, focus on a balanced diet with low glycemic index foods. Regular exercise and monitoring blood sugar levels are crucial. I can recommend some Indian diet videos that might help.",
	},
	{
		keywords: []string{"blood pressure", "bp"},
		reply:    "High blood pressure requires regular monitoring. Reduce salt intake, exercise regularly, and manage stress. If you have consistent high readings, please consult a cardiologist.",
	},
	{
		keywords: []string{"diet", "food"},
		reply:    "A healthy diet should include plenty of vegetables, fruits, whole grains, and lean proteins. I can suggest some diet plans based on common Indian foods. Would you like me to recommend some videos?",
	},
}

const chatFallback = "Thank you for your question. While I can provide general health information, I recommend consulting with one of our qualified doctors for personalized medical advice. You can book an appointment through the app."

func adviceFor(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return chatFallback
}

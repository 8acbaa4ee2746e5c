package site

// Sections returns the page copy in page order.
func Sections() []Section {
	return []Section{
		{
			Key:   Hero,
			Title: "Your AI Companion for Mental Health",
			Lines: []string{
				"Experience empathetic conversations powered by advanced AI technology.",
				"Get personalized insights and recommendations tailored to your mental wellness journey.",
				"Empathetic AI · Smart Insights · 24/7 Available",
			},
		},
		{
			Key:   Features,
			Title: "Features",
			Lines: []string{
				"Empathetic Conversations: natural, understanding conversations that listen without judgment.",
				"Smart Insights: personalized insights that help you understand patterns and triggers.",
				"Personalized Recommendations: meditation guides, therapy articles and wellness content.",
				"Safe & Private: your conversations are secure and confidential.",
				"24/7 Availability: support whenever you need it.",
				"Evidence-Based Support: grounded in mental health research and best practices.",
			},
		},
		{
			Key:   HowItWorks,
			Title: "How It Works",
			Lines: []string{
				"01 Start Chatting: share your thoughts in a safe, judgment-free environment.",
				"02 AI Analysis: conversation patterns and emotional cues are analyzed to understand your needs.",
				"03 Get Personalized Support: coping strategies, resources and guidance for your situation.",
			},
		},
		{
			Key:   About,
			Title: "About psychMASTER",
			Lines: []string{
				"Advanced AI Technology: language models designed for empathetic conversation.",
				"Real-Time Analysis: contextually relevant support and recommendations.",
				"Personalized Approach: responses based on individual needs and conversation history.",
				"Privacy & Safety First: built with privacy by design principles.",
			},
		},
		{
			Key:   Chat,
			Title: "Start Your Conversation",
			Lines: []string{
				"Begin your mental health journey with our empathetic AI.",
				"Share what's on your mind in a safe, supportive environment.",
			},
		},
		{
			Key:   Contact,
			Title: "Contact",
			Lines: []string{
				"contact@psychmaster.ai · github.com/psychmaster",
				"psychMASTER is not a substitute for professional mental health care.",
				"Crisis resources: call or text 988, text HOME to 741741, or call 911.",
			},
		},
		{
			Key:   Footer,
			Title: "psychMASTER",
			Lines: []string{
				"Made with care for mental health awareness.",
			},
		},
	}
}

package recommend

import "github.com/psychmaster/psychmaster/internal/model/assessment"

type catalogEntry struct {
	videos       []assessment.Resource
	articles     []assessment.Resource
	professional []assessment.Resource
}

var catalog = map[assessment.State]catalogEntry{
	assessment.Normal: {
		videos: []assessment.Resource{
			{Title: "10 Daily Habits for Mental Wellness", URL: "https://www.youtube.com/watch?v=3QIfkeA6HBY", Description: "Simple daily practices to maintain good mental health"},
			{Title: "Mindfulness Meditation for Beginners", URL: "https://www.youtube.com/watch?v=ZToicYcHIOU", Description: "10-minute guided meditation for stress relief"},
			{Title: "Building Emotional Resilience", URL: "https://www.youtube.com/watch?v=NUHsEmlIoE4", Description: "Techniques to build emotional strength and resilience"},
		},
		articles: []assessment.Resource{
			{Title: "The Science of Well-Being", URL: "https://www.helpguide.org/articles/mental-health/building-better-mental-health.htm", Description: "Evidence-based strategies for maintaining mental wellness"},
			{Title: "Positive Psychology Practices", URL: "https://positivepsychology.com/positive-psychology-exercises/", Description: "Research-backed exercises to boost happiness and life satisfaction"},
		},
		professional: []assessment.Resource{
			{Title: "Psychology Today - Find a Therapist", URL: "https://www.psychologytoday.com/us/therapists", Description: "Find mental health professionals in your area"},
		},
	},
	assessment.Depression: {
		videos: []assessment.Resource{
			{Title: "Understanding Depression - Mayo Clinic", URL: "https://www.youtube.com/watch?v=z-IR48Mb3W0", Description: "Comprehensive overview of depression symptoms and treatment"},
			{Title: "Cognitive Behavioral Therapy for Depression", URL: "https://www.youtube.com/watch?v=0ViaCs0k2jQ", Description: "CBT techniques to manage depressive thoughts"},
			{Title: "Depression Recovery: Daily Routine That Helps", URL: "https://www.youtube.com/watch?v=OG6HZMMDEYA", Description: "Practical daily routines for managing depression"},
			{Title: "Guided Meditation for Depression and Anxiety", URL: "https://www.youtube.com/watch?v=ZToicYcHIOU", Description: "Calming meditation specifically for depression relief"},
		},
		articles: []assessment.Resource{
			{Title: "Depression Treatment and Management", URL: "https://www.nami.org/About-Mental-Illness/Mental-Health-Conditions/Depression", Description: "Comprehensive guide to understanding and treating depression"},
			{Title: "Coping with Depression - Harvard Health", URL: "https://www.health.harvard.edu/mind-and-mood/what-causes-depression", Description: "Evidence-based strategies for managing depression"},
			{Title: "Self-Help Strategies for Depression", URL: "https://www.helpguide.org/articles/depression/coping-with-depression.htm", Description: "Practical self-help techniques for depression recovery"},
		},
		professional: []assessment.Resource{
			{Title: "National Suicide Prevention Lifeline", URL: "https://suicidepreventionlifeline.org/", Description: "Crisis support: Call 988 for immediate help"},
			{Title: "Depression and Bipolar Support Alliance", URL: "https://www.dbsalliance.org/", Description: "Support groups and resources for depression"},
			{Title: "SAMHSA National Helpline", URL: "https://www.samhsa.gov/find-help/national-helpline", Description: "1-800-662-4357 - Free, confidential treatment referral service"},
		},
	},
	assessment.Anxiety: {
		videos: []assessment.Resource{
			{Title: "Anxiety Explained - Understanding Your Anxious Mind", URL: "https://www.youtube.com/watch?v=WWloIAQpMcQ", Description: "Understanding the science behind anxiety and panic"},
			{Title: "5-4-3-2-1 Grounding Technique for Anxiety", URL: "https://www.youtube.com/watch?v=30VMIEmA114", Description: "Quick technique to manage anxiety attacks"},
			{Title: "Breathing Exercises for Anxiety Relief", URL: "https://www.youtube.com/watch?v=DbDoBzGY3vo", Description: "Effective breathing techniques to calm anxiety"},
			{Title: "Progressive Muscle Relaxation for Anxiety", URL: "https://www.youtube.com/watch?v=ihO02wUzgkc", Description: "Guided muscle relaxation to reduce physical anxiety symptoms"},
		},
		articles: []assessment.Resource{
			{Title: "Anxiety Disorders - Mayo Clinic", URL: "https://www.mayoclinic.org/diseases-conditions/anxiety/symptoms-causes/syc-20350961", Description: "Comprehensive guide to anxiety disorders and treatment"},
			{Title: "Managing Anxiety - Practical Tips", URL: "https://www.anxietyanddepressionassociation.org/tips-managing-anxiety-and-stress", Description: "Evidence-based tips for managing anxiety in daily life"},
			{Title: "Cognitive Techniques for Anxiety", URL: "https://www.helpguide.org/articles/anxiety/anxiety-disorders-and-anxiety-attacks.htm", Description: "Cognitive strategies to overcome anxious thoughts"},
		},
		professional: []assessment.Resource{
			{Title: "Anxiety and Depression Association of America", URL: "https://adaa.org/", Description: "Resources, support groups, and professional help for anxiety"},
			{Title: "Crisis Text Line", URL: "https://www.crisistextline.org/", Description: "Text HOME to 741741 for free crisis counseling"},
		},
	},
	assessment.Bipolar: {
		videos: []assessment.Resource{
			{Title: "Understanding Bipolar Disorder - Mayo Clinic", URL: "https://www.youtube.com/watch?v=RrWfDgqIbcg", Description: "Comprehensive overview of bipolar disorder"},
			{Title: "Living with Bipolar Disorder - Personal Stories", URL: "https://www.youtube.com/watch?v=apLGdKKjFNA", Description: "Real experiences and coping strategies from bipolar individuals"},
			{Title: "Mood Tracking for Bipolar Disorder", URL: "https://www.youtube.com/watch?v=FvnnyY_h0GI", Description: "How to track mood changes and identify triggers"},
		},
		articles: []assessment.Resource{
			{Title: "Bipolar Disorder Guide - NAMI", URL: "https://www.nami.org/About-Mental-Illness/Mental-Health-Conditions/Bipolar-Disorder", Description: "Complete guide to understanding bipolar disorder"},
			{Title: "Managing Bipolar Disorder", URL: "https://www.webmd.com/bipolar-disorder/guide/bipolar-disorder-overview", Description: "Treatment options and management strategies"},
			{Title: "Bipolar Self-Care Strategies", URL: "https://www.helpguide.org/articles/bipolar-disorder/living-with-bipolar-disorder.htm", Description: "Self-care techniques for managing bipolar symptoms"},
		},
		professional: []assessment.Resource{
			{Title: "Depression and Bipolar Support Alliance", URL: "https://www.dbsalliance.org/", Description: "Specialized support for bipolar disorder"},
			{Title: "International Bipolar Foundation", URL: "https://ibpf.org/", Description: "Education and support for bipolar individuals and families"},
		},
	},
	assessment.Suicidal: {
		videos: []assessment.Resource{
			{Title: "Suicide Prevention - Warning Signs and How to Help", URL: "https://www.youtube.com/watch?v=WcSUs9iZv-g", Description: "Understanding suicidal thoughts and getting help"},
			{Title: "Crisis Survival Skills - DBT", URL: "https://www.youtube.com/watch?v=x3adCjQ_Bfg", Description: "Dialectical behavior therapy techniques for crisis situations"},
			{Title: "Hope and Recovery from Suicidal Thoughts", URL: "https://www.youtube.com/watch?v=WrqjmxPG1rM", Description: "Personal stories of recovery and finding hope"},
		},
		articles: []assessment.Resource{
			{Title: "Suicide Prevention Resources - CDC", URL: "https://www.cdc.gov/suicide/resources/index.html", Description: "Comprehensive suicide prevention resources and strategies"},
			{Title: "Coping with Suicidal Thoughts", URL: "https://www.suicidepreventionlifeline.org/help-yourself/attempt-survivors/", Description: "Strategies for managing suicidal ideation"},
		},
		professional: []assessment.Resource{
			{Title: "IMMEDIATE CRISIS SUPPORT", URL: "tel:988", Description: "Call 988 - National Suicide Prevention Lifeline (Available 24/7)"},
			{Title: "Crisis Text Line", URL: "https://www.crisistextline.org/", Description: "Text HOME to 741741 for immediate crisis support"},
			{Title: "Emergency Services", URL: "tel:911", Description: "Call 911 for immediate emergency assistance"},
			{Title: "National Suicide Prevention Lifeline", URL: "https://suicidepreventionlifeline.org/", Description: "Comprehensive crisis support and resources"},
		},
	},
}

var crisisResources = []assessment.Resource{
	{Title: "National Suicide Prevention Lifeline: 988", URL: "tel:988", Description: "Free, confidential crisis support available 24/7/365"},
	{Title: "Crisis Text Line", URL: "https://www.crisistextline.org/", Description: "Text HOME to 741741 for free, 24/7 crisis counseling"},
	{Title: "Emergency Services", URL: "tel:911", Description: "Call 911 for immediate medical emergency assistance"},
}

var crisisActions = []string{
	"If you are in immediate danger, call 911",
	"Call the National Suicide Prevention Lifeline: 988",
	"Reach out to a trusted friend, family member, or mental health professional",
	"Go to your nearest emergency room or urgent care center",
}

var immediateActions = map[assessment.State][]string{
	assessment.Normal: {
		"Continue practicing good mental health habits",
		"Consider regular check-ins with yourself about your mental state",
		"Maintain social connections and support networks",
	},
	assessment.Depression: {
		"Establish a daily routine with small, achievable goals",
		"Try to get some sunlight and fresh air each day",
		"Reach out to a friend or family member for support",
		"Consider scheduling an appointment with a mental health professional",
	},
	assessment.Anxiety: {
		"Practice deep breathing exercises when feeling anxious",
		"Use grounding techniques like the 5-4-3-2-1 method",
		"Limit caffeine intake which can increase anxiety",
		"Consider talking to a counselor about anxiety management techniques",
	},
	assessment.Bipolar: {
		"Maintain a consistent sleep schedule",
		"Track your mood changes and identify triggers",
		"Stay connected with your support system",
		"Contact your mental health provider if you notice significant mood changes",
	},
}

var personalizedMessages = map[assessment.State]string{
	assessment.Normal:     "Your conversation suggests you're managing your mental health well. Keep up the good work with self-care and stay aware of your mental state.",
	assessment.Depression: "Based on our conversation, it appears you may be experiencing symptoms of depression. This is treatable, and you don't have to go through this alone. The resources below can help you take the next steps toward feeling better.",
	assessment.Anxiety:    "Your messages indicate you might be dealing with anxiety. Many people experience anxiety, and there are effective techniques and treatments available to help you manage these feelings.",
	assessment.Bipolar:    "The patterns in our conversation suggest you may be experiencing symptoms related to bipolar disorder. Professional support can be very helpful in managing mood changes and developing coping strategies.",
	assessment.Suicidal:   "I'm very concerned about the thoughts and feelings you've shared. Your life has value, and there are people who want to help you through this difficult time. Please reach out for immediate support using the crisis resources below.",
}

const highRiskSuffix = " Please prioritize getting professional support as soon as possible."

var followUps = map[assessment.State][]string{
	assessment.Normal: {
		"Continue regular self-check-ins about your mental health",
		"Maintain healthy lifestyle habits (exercise, sleep, nutrition)",
		"Consider mindfulness or meditation practices",
	},
	assessment.Depression: {
		"Keep a daily mood journal to track patterns",
		"Set small, achievable daily goals",
		"Consider joining a support group",
		"Schedule regular follow-ups with a mental health professional",
	},
	assessment.Anxiety: {
		"Practice daily relaxation techniques",
		"Identify and work on managing your anxiety triggers",
		"Consider cognitive behavioral therapy (CBT)",
		"Monitor your progress with anxiety management techniques",
	},
	assessment.Bipolar: {
		"Maintain consistent daily routines",
		"Keep a detailed mood tracker",
		"Work with a psychiatrist on medication management if appropriate",
		"Build a strong support network of family and friends",
	},
	assessment.Suicidal: {
		"Follow up with crisis counselors or mental health professionals",
		"Create a safety plan with specific steps for crisis situations",
		"Remove any means of self-harm from your environment",
		"Stay connected with your support network daily",
	},
}

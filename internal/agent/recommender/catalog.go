package recommender

import "github.com/career-counselor/server/internal/agent/model"

// Courses is the built-in catalog, in ranking tie-break order.
var Courses = []model.Course{
	// Programming & Tech
	{
		ID:         "py-101",
		Title:      "Python for Beginners",
		Level:      "Beginner",
		Skills:     []string{"Python", "Basic Logic"},
		CareerPath: []string{"Data Scientist", "Software Engineer", "Web Developer"},
		URL:        "https://www.coursera.org/learn/python-for-everybody",
	},
	{
		ID:         "ds-201",
		Title:      "Data Science Fundamentals",
		Level:      "Intermediate",
		Skills:     []string{"Python", "Statistics"},
		CareerPath: []string{"Data Scientist"},
		URL:        "https://www.edx.org/learn/data-science/harvard-university-data-science-r-basics",
	},
	{
		ID:         "web-101",
		Title:      "Introduction to Web Development",
		Level:      "Beginner",
		Skills:     []string{"HTML", "CSS"},
		CareerPath: []string{"Web Developer"},
		URL:        "https://www.freecodecamp.org/learn/2022/responsive-web-design/",
	},
	{
		ID:         "web-202",
		Title:      "Advanced React Patterns",
		Level:      "Advanced",
		Skills:     []string{"JavaScript", "React"},
		CareerPath: []string{"Web Developer"},
		URL:        "https://react.dev/learn",
	},
	{
		ID:         "ml-301",
		Title:      "Machine Learning Mastery",
		Level:      "Advanced",
		Skills:     []string{"Python", "Math", "TensorFlow"},
		CareerPath: []string{"Data Scientist", "AI Engineer"},
		URL:        "https://www.coursera.org/specializations/machine-learning-introduction",
	},

	// Leadership & Management
	{
		ID:         "lead-101",
		Title:      "Leadership Foundations",
		Level:      "Beginner",
		Skills:     []string{"Communication", "Team Management"},
		CareerPath: []string{"Manager", "Team Lead", "Executive"},
		URL:        "https://www.coursera.org/learn/leadership-fundamentals",
	},
	{
		ID:         "lead-201",
		Title:      "Strategic Leadership",
		Level:      "Intermediate",
		Skills:     []string{"Strategy", "Decision Making", "Vision"},
		CareerPath: []string{"Manager", "Executive", "Entrepreneur"},
		URL:        "https://www.edx.org/learn/leadership/harvard-university-leadership-principles",
	},
	{
		ID:         "lead-301",
		Title:      "Executive Leadership",
		Level:      "Advanced",
		Skills:     []string{"Change Management", "Organizational Strategy"},
		CareerPath: []string{"Executive", "CEO", "Director"},
		URL:        "https://www.coursera.org/specializations/executive-leadership",
	},

	// Self Development
	{
		ID:         "self-101",
		Title:      "Personal Productivity Mastery",
		Level:      "Beginner",
		Skills:     []string{"Time Management", "Goal Setting"},
		CareerPath: []string{"Any"},
		URL:        "https://www.udemy.com/course/personal-productivity/",
	},
	{
		ID:         "self-201",
		Title:      "Emotional Intelligence",
		Level:      "Intermediate",
		Skills:     []string{"Self-Awareness", "Empathy", "Communication"},
		CareerPath: []string{"Manager", "Sales", "Any"},
		URL:        "https://www.coursera.org/learn/emotional-intelligence",
	},
	{
		ID:         "self-301",
		Title:      "Mindfulness & Resilience",
		Level:      "Intermediate",
		Skills:     []string{"Stress Management", "Mindfulness"},
		CareerPath: []string{"Any"},
		URL:        "https://www.mindful.org/meditation/mindfulness-getting-started/",
	},

	// Sales & Marketing
	{
		ID:         "sales-101",
		Title:      "Sales Fundamentals",
		Level:      "Beginner",
		Skills:     []string{"Communication", "Persuasion", "Negotiation"},
		CareerPath: []string{"Sales", "Business Development"},
		URL:        "https://www.coursera.org/learn/sales-training-sales-techniques",
	},
	{
		ID:         "sales-201",
		Title:      "Consultative Selling",
		Level:      "Intermediate",
		Skills:     []string{"Relationship Building", "Problem Solving"},
		CareerPath: []string{"Sales", "Account Manager"},
		URL:        "https://www.linkedin.com/learning/consultative-selling",
	},
	{
		ID:         "mkt-101",
		Title:      "Digital Marketing Basics",
		Level:      "Beginner",
		Skills:     []string{"SEO", "Social Media", "Content Marketing"},
		CareerPath: []string{"Marketer", "Digital Marketer"},
		URL:        "https://www.coursera.org/specializations/digital-marketing",
	},
	{
		ID:         "mkt-201",
		Title:      "Growth Marketing",
		Level:      "Intermediate",
		Skills:     []string{"Analytics", "A/B Testing", "User Acquisition"},
		CareerPath: []string{"Growth Marketer", "Product Manager"},
		URL:        "https://www.udemy.com/course/growth-hacking/",
	},

	// Business & Entrepreneurship
	{
		ID:         "biz-101",
		Title:      "Business Strategy Essentials",
		Level:      "Beginner",
		Skills:     []string{"Business Planning", "Market Analysis"},
		CareerPath: []string{"Entrepreneur", "Manager", "Consultant"},
		URL:        "https://www.coursera.org/learn/business-strategy",
	},
	{
		ID:         "biz-201",
		Title:      "Startup Fundamentals",
		Level:      "Intermediate",
		Skills:     []string{"Lean Startup", "MVP", "Fundraising"},
		CareerPath: []string{"Entrepreneur", "Founder"},
		URL:        "https://www.udacity.com/course/how-to-build-a-startup--ep245",
	},

	// Communication & Soft Skills
	{
		ID:         "comm-101",
		Title:      "Effective Communication",
		Level:      "Beginner",
		Skills:     []string{"Public Speaking", "Writing", "Presentation"},
		CareerPath: []string{"Any"},
		URL:        "https://www.coursera.org/learn/communication-skills",
	},
	{
		ID:         "comm-201",
		Title:      "Conflict Resolution",
		Level:      "Intermediate",
		Skills:     []string{"Mediation", "Negotiation", "Active Listening"},
		CareerPath: []string{"Manager", "HR", "Team Lead"},
		URL:        "https://www.coursera.org/learn/conflict-resolution-skills",
	},
}

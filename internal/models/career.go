package models

// Question is a single generated aptitude-test question.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

// CareerSuggestion is one suggested career path for a profile.
type CareerSuggestion struct {
	CareerTitle    string   `json:"career_title"`
	GrowthOutlook  string   `json:"growth_outlook"`
	RequiredSkills []string `json:"required_skills"`
}

package model

// Course is one catalog entry returned by the recommender.
type Course struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Level      string   `json:"level"`
	Skills     []string `json:"skills"`
	CareerPath []string `json:"career_path"`
	URL        string   `json:"url"`
}

package domain

import "time"

type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	DemoURL      string    `json:"demoUrl,omitempty"`
	GitHubURL    string    `json:"githubUrl,omitempty"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p Project) Clone() Project {
	out := p
	out.Technologies = append([]string(nil), p.Technologies...)
	return out
}

package domain

import "time"

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	CoverImage  string    `json:"coverImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Author      Author    `json:"author"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Published   bool      `json:"published"`
}

// Clone returns a copy that shares no slices with p.
func (p Post) Clone() Post {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}

// PostGroups partitions posts for the admin view.
type PostGroups struct {
	Published []Post `json:"published"`
	Drafts    []Post `json:"drafts"`
}

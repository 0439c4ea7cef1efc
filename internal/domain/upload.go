package domain

// FileMeta describes an uploaded file as declared by the client. Contents are
// never read.
type FileMeta struct {
	Name        string
	ContentType string
	Size        int64
}

type PostInput struct {
	Title    string   `json:"title" form:"title"`
	Content  string   `json:"content" form:"content"`
	Excerpt  string   `json:"excerpt" form:"excerpt"`
	Category string   `json:"category" form:"category"`
	Tags     []string `json:"tags" form:"tags"`
}

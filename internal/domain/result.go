package domain

// ActionResult is the value every mock action returns. Failures are carried
// in Success=false rather than as errors.
type ActionResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl,omitempty"`
	PostID   string `json:"postId,omitempty"`
}

func Ok(msg string) ActionResult { return ActionResult{Success: true, Message: msg} }

func Fail(msg string) ActionResult { return ActionResult{Success: false, Message: msg} }

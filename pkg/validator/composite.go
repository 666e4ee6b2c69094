package validator

// User mirrors the user resource served by the API under test.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

func (u User) Validate() *Result {
	return ValidateUser(u.Name, u.Username, u.Email, u.Phone, u.Website)
}

// Post mirrors the post resource served by the API under test.
type Post struct {
	ID     int64  `json:"id,omitempty"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (p Post) Validate() *Result {
	return ValidatePost(p.UserID, p.Title, p.Body)
}

// Comment mirrors the comment resource served by the API under test.
type Comment struct {
	ID     int64  `json:"id,omitempty"`
	PostID int64  `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

func (c Comment) Validate() *Result {
	return ValidateComment(c.PostID, c.Name, c.Email, c.Body)
}

// ValidateUser runs every user field check and collects one error per bad field.
func ValidateUser(name, username, email, phone, website string) *Result {
	return Success().Check(
		Required("Name", name),
		ValidUsername("Username", username),
		ValidEmail("Email", email),
		ValidPhone("Phone", phone),
		ValidURL("Website", website),
	)
}

func ValidatePost(userID int64, title, body string) *Result {
	return Success().Check(
		Positive("User ID", userID),
		Required("Title", title),
		Required("Body", body),
	)
}

func ValidateComment(postID int64, name, email, body string) *Result {
	return Success().Check(
		Positive("Post ID", postID),
		Required("Name", name),
		ValidEmail("Email", email),
		Required("Body", body),
	)
}

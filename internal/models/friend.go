package models

// FriendProfile is the public view of another account: display fields plus
// that user's posts, and whether the viewer already follows them.
type FriendProfile struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Following bool   `json:"following"`
	Posts     []Post `json:"posts"`
}

// FriendRequest is the payload for following and unfollowing an account.
type FriendRequest struct {
	FriendEmail string `json:"friendEmail"`
}

package models

type User struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FollowingIDs []int64 `json:"following_ids"`
	FollowerIDs  []int64 `json:"follower_ids"`
}

// Profile is the signed-in editor. There is exactly one.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	Avatar    string `json:"avatar,omitempty"`
	JoinedAt  string `json:"joined_at"`
}

package domain

type User struct {
	ID             int64   `db:"id"`
	Email          string  `db:"email"`
	Username       string  `db:"username"`
	HashedPassword string  `db:"hashed_password"`
	ProfileImage   *string `db:"profile_image"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
}

package types

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest is the body of POST /recipes. The author is never
// taken from the body; it is always the authenticated user.
type CreateRecipeRequest struct {
	Title           string   `json:"title" binding:"required"`
	Ingredients     []string `json:"ingredients" binding:"required,min=1"`
	Cuisine         string   `json:"cuisine" binding:"required"`
	GlutenFree      bool     `json:"gluten_free"`
	LactoseFree     bool     `json:"lactose_free"`
	Instructions    string   `json:"instructions" binding:"required"`
	Time            int      `json:"time" binding:"required,min=1"`
	Flavor          string   `json:"flavor" binding:"required"`
	BeveragePairing string   `json:"beverage_pairing" binding:"required"`
	Difficulty      string   `json:"difficulty" binding:"required"`
	ImageURL        string   `json:"image_url"`
}

// UpdateRecipeRequest is the body of PUT /recipes/:id. Absent fields keep
// their stored values. An author_id in the body is silently discarded.
type UpdateRecipeRequest struct {
	Title           *string  `json:"title"`
	Ingredients     []string `json:"ingredients"`
	Cuisine         *string  `json:"cuisine"`
	GlutenFree      *bool    `json:"gluten_free"`
	LactoseFree     *bool    `json:"lactose_free"`
	Instructions    *string  `json:"instructions"`
	Time            *int     `json:"time"`
	Flavor          *string  `json:"flavor"`
	BeveragePairing *string  `json:"beverage_pairing"`
	Difficulty      *string  `json:"difficulty"`
	ImageURL        *string  `json:"image_url"`
}

// CommentRequest covers comment creation and edits.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateProfileRequest is the body of PUT /users/profile. A password
// change requires the current password; other fields are optional.
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	Bio             *string `json:"bio"`
	ProfileImage    *string `json:"profile_image"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
}

package models

type SignupRequest struct {
	Email     string  `json:"email" form:"email" binding:"required,email,max=255"`
	Password  string  `json:"password" form:"password" binding:"required,password"`
	FirstName *string `json:"first_name" form:"first_name" binding:"omitempty,trimmax=128"`
	LastName  *string `json:"last_name" form:"last_name" binding:"omitempty,trimmax=128"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	// Scopes is a space separated list; empty means every known scope.
	Scopes string `json:"scopes" form:"scopes"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateBookRequest struct {
	Title         string  `json:"title" form:"title" binding:"required,notblank,trimmax=255"`
	Author        string  `json:"author" form:"author" binding:"required,notblank,trimmax=255"`
	Description   *string `json:"description" form:"description" binding:"omitempty,trimmax=1000"`
	PublishedYear *int    `json:"published_year" form:"published_year" binding:"omitempty,pubyear"`
	Image         *string `json:"image" form:"image" binding:"omitempty,trimmax=255"`
}

// UpdateBookRequest carries a partial update; nil fields are left unchanged.
type UpdateBookRequest struct {
	Title         *string `json:"title" form:"title" binding:"omitempty,notblank,trimmax=255"`
	Author        *string `json:"author" form:"author" binding:"omitempty,notblank,trimmax=255"`
	Description   *string `json:"description" form:"description" binding:"omitempty,trimmax=1000"`
	PublishedYear *int    `json:"published_year" form:"published_year" binding:"omitempty,pubyear"`
	Image         *string `json:"image" form:"image" binding:"omitempty,trimmax=255"`
}

type BookListParams struct {
	Title  string  `form:"title"`
	Author string  `form:"author"`
	Rating float64 `form:"rating,default=0" binding:"gte=0,lte=5"`
}

// RatingRequest accepts the value as one of the scale's decimal literals.
type RatingRequest struct {
	Value string `json:"value" form:"value" binding:"required,rating"`
}

type RatingQuery struct {
	BookID string `form:"book_id" binding:"required"`
}

type RatingValueResponse struct {
	Value float64 `json:"value"`
}

package dto

type FeedbackRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required,oneof='Bug Report' 'Feature Request' 'General Feedback'"`
	Message  string `json:"message" validate:"required"`
}

type FeedbackResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type CareerApplicationRequest struct {
	Name      string `json:"name" validate:"required"`
	Education string `json:"education" validate:"required"`
	Role      string `json:"role" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

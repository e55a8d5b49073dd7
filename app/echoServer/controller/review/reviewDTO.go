package review

type PostReviewReq struct {
	Description string `json:"description" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
}

type UpdateReviewReq struct {
	Description string `json:"description" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
}

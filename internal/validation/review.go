package validation

import "strings"

// ReviewInput is the body of a review request.
type ReviewInput struct {
	ReviewSubject *string `json:"reviewSubject"`
	Vote          *string `json:"vote"`
}

// ValidateReview requires a review subject. The optional vote indicator must
// be upvote or downvote when given.
func ValidateReview(in ReviewInput) Result {
	if in.ReviewSubject == nil {
		return notDefined("Review subject is not defined")
	}
	errs := fieldErrors{}
	if blank(in.ReviewSubject) {
		errs.add("reviewSubject", "Review subject is required")
	}
	if in.Vote != nil {
		switch strings.ToLower(strings.TrimSpace(*in.Vote)) {
		case "", "upvote", "downvote":
		default:
			errs.add("vote", "Vote must be either upvote or downvote")
		}
	}
	return errs.result()
}

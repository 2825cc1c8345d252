package main

import (
	"yvrfountains/internal/domain/fountains"
	"yvrfountains/internal/domain/reviews"
	"yvrfountains/internal/mailer"
)

// moderationNotifier emails the moderation inbox whenever a public review
// lands in the pending queue.
type moderationNotifier struct {
	client mailer.Client
	to     string
}

func (n *moderationNotifier) PendingReviewSubmitted(review *reviews.Review, fountain *fountains.Fountain) error {
	name := "anonymous"
	if review.ReviewerName != nil {
		name = *review.ReviewerName
	}
	receipt := ""
	if review.Receipt != nil {
		receipt = *review.Receipt
	}

	data := map[string]any{
		"FountainName": fountain.Name,
		"FountainID":   fountain.ID,
		"ReviewID":     review.ID,
		"Receipt":      receipt,
		"Overall":      review.Ratings.Overall,
		"ReviewerName": name,
	}

	_, err := n.client.Send(mailer.ReviewSubmittedTemplate, "Moderators", n.to, data)
	return err
}

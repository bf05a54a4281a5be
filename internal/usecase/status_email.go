package usecase

import (
	"fmt"

	"freightmarket/internal/domain/entities"
)

// statusEmail builds the out-of-band client notification for a request
// in its current status. Plain text on purpose; these are transactional
// mails, not marketing.
func statusEmail(f entities.FreightRequest, client entities.User) (subject, body string) {
	route := fmt.Sprintf("- Request: #%s\n- Origin: %s\n- Destination: %s\n",
		f.ID, f.OriginAddress, f.DestinationAddress)

	switch f.Status {
	case entities.FreightStatusWithoutCarrier:
		subject = fmt.Sprintf("FreightMarket - Request #%s created", f.ID)
		body = fmt.Sprintf("Hi %s,\n\nYour freight request was created.\n\n%s\nCarriers covering your zones will start sending quotes; we will let you know when offers arrive.\n", client.FullName(), route)
	case entities.FreightStatusPending:
		subject = fmt.Sprintf("FreightMarket - Quote accepted for request #%s", f.ID)
		body = fmt.Sprintf("Hi %s,\n\nYou accepted a quote for your freight request.\n\n%s\nThe carrier will contact you to arrange the pickup.\n", client.FullName(), route)
	case entities.FreightStatusEnRoute:
		subject = fmt.Sprintf("FreightMarket - Your freight is on its way (#%s)", f.ID)
		body = fmt.Sprintf("Hi %s,\n\nYour freight trip has started.\n\n%s\nWe will notify you when the trip completes.\n", client.FullName(), route)
	case entities.FreightStatusCompleted:
		subject = fmt.Sprintf("FreightMarket - Freight completed (#%s)", f.ID)
		body = fmt.Sprintf("Hi %s,\n\nYour freight was delivered.\n\n%s\nPlease rate your carrier to help other users.\n", client.FullName(), route)
	case entities.FreightStatusCancelled:
		subject = fmt.Sprintf("FreightMarket - Request cancelled (#%s)", f.ID)
		body = fmt.Sprintf("Hi %s,\n\nYour freight request was cancelled.\n\n%s", client.FullName(), route)
	default:
		subject = fmt.Sprintf("FreightMarket - Request #%s updated", f.ID)
		body = fmt.Sprintf("Hi %s,\n\nYour freight request status is now %q.\n\n%s", client.FullName(), f.Status, route)
	}
	return subject, body
}

// quoteEmail tells the client a new quote arrived on their request.
func quoteEmail(f entities.FreightRequest, q entities.Quote, client entities.User) (subject, body string) {
	subject = fmt.Sprintf("FreightMarket - New quote for your request #%s", f.ID)
	body = fmt.Sprintf(
		"Hi %s,\n\nYou received a new quote for your freight request.\n\n- Request: #%s\n- Origin: %s\n- Destination: %s\n- Estimated price: $%.2f\n- Comment: %s\n\nLog in to review and accept it.\n",
		client.FullName(), f.ID, f.OriginAddress, f.DestinationAddress, q.EstimatedPrice, orDefault(q.Comment, "none"))
	return subject, body
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

package api

import (
	"context"
	"encoding/json"

	"pracd-client/internal/model"
)

// SubmitEnquiry posts the public contact form; no session required.
func (c *Client) SubmitEnquiry(ctx context.Context, e *model.Enquiry) error {
	return c.post(ctx, "/api/contact", public, e, nil, "failed to submit contact form")
}

// Enquiries lists contact submissions; admin only. The backend usually
// answers with {total, contacts}.
func (c *Client) Enquiries(ctx context.Context) ([]model.Enquiry, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/contact", bearer, &raw, "failed to load enquiries"); err != nil {
		return nil, err
	}
	return decodeList[model.Enquiry](raw, "contacts", "results"), nil
}
